package quotectl

import (
	"context"
	"fmt"

	"rating-service/internal/domain/entity"
	"rating-service/internal/server"
	"rating-service/pkg/rest"
)

// quoter is satisfied by both the in-process pipeline and the remote client.
type quoter interface {
	Quote(context.Context, rest.QuoteRequest) (rest.QuoteResponse, error)
	BulkQuote(context.Context, []rest.QuoteRequest) ([]rest.BulkQuoteItem, error)
}

type quoteService interface {
	Quote(context.Context, entity.QuoteRequest) (entity.Quote, error)
	BulkQuote(context.Context, []entity.QuoteRequest) []entity.BulkResult
}

type localQuoter struct {
	quoteService quoteService
}

func (l localQuoter) Quote(ctx context.Context, request rest.QuoteRequest) (rest.QuoteResponse, error) {
	quoteRequest, err := server.NewDomainQuoteRequest(request)
	if err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("server.NewDomainQuoteRequest: %w", err)
	}

	quote, err := l.quoteService.Quote(ctx, quoteRequest)
	if err != nil {
		return rest.QuoteResponse{}, fmt.Errorf("quoteService.Quote: %w", err)
	}

	return server.NewRESTQuote(quote), nil
}

func (l localQuoter) BulkQuote(ctx context.Context, requests []rest.QuoteRequest) ([]rest.BulkQuoteItem, error) {
	quoteRequests, err := server.NewDomainQuoteRequests(requests)
	if err != nil {
		return nil, fmt.Errorf("server.NewDomainQuoteRequests: %w", err)
	}

	return server.NewRESTBulkItems(l.quoteService.BulkQuote(ctx, quoteRequests)), nil
}
