package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"rating-service/internal/domain/entity"
	"rating-service/pkg/contextx"
	"rating-service/pkg/errcodes"
	"rating-service/pkg/httpx/reply"
	"rating-service/pkg/httpx/req"
	"rating-service/pkg/logx"
	"rating-service/pkg/rest"
)

const healthStatus = "healthy"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type quoteService interface {
	Quote(context.Context, entity.QuoteRequest) (entity.Quote, error)
	BulkQuote(context.Context, []entity.QuoteRequest) []entity.BulkResult
}

type QuoteServer struct {
	quoteService quoteService
	bulkMaxItems int
}

func NewQuoteServer(quoteService quoteService, bulkMaxItems int) QuoteServer {
	return QuoteServer{
		quoteService: quoteService,
		bulkMaxItems: bulkMaxItems,
	}
}

func (s QuoteServer) postV1Quote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	quoteRequest, err := NewDomainQuoteRequest(request)
	if err != nil {
		return fmt.Errorf("NewDomainQuoteRequest: %w", err)
	}

	quote, err := s.quoteService.Quote(ctx, quoteRequest)
	if err != nil {
		return fmt.Errorf("quoteService.Quote: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTQuote(quote))

	return nil
}

func (s QuoteServer) postV1BulkQuote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request []rest.QuoteRequest

	if err := req.ReadList(r, &request); err != nil {
		return fmt.Errorf("req.ReadList: %w", err)
	}

	switch {
	case len(request) == 0:
		return failure.NewInvalidArgumentError(
			"empty bulk request",
			failure.WithCode(errcodes.EmptyBulk),
			failure.WithDescription("At least one quote request is required"),
		)
	case s.bulkMaxItems > 0 && len(request) > s.bulkMaxItems:
		return failure.NewInvalidArgumentError(
			"bulk request too large",
			failure.WithCode(errcodes.BulkTooLarge),
			failure.WithDescription(fmt.Sprintf("At most %d quote requests are accepted", s.bulkMaxItems)),
		)
	}

	quoteRequests, err := NewDomainQuoteRequests(request)
	if err != nil {
		return fmt.Errorf("NewDomainQuoteRequests: %w", err)
	}

	logger(ctx).Info("bulk quote started", slog.Int(logx.FieldBulkSize, len(quoteRequests)))

	results := s.quoteService.BulkQuote(ctx, quoteRequests)

	reply.JSON(ctx, w, http.StatusOK, NewRESTBulkItems(results))

	return nil
}

func (s QuoteServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{Status: healthStatus})

	return nil
}
