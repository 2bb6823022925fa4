package quote

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"rating-service/internal/domain"
	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
	"rating-service/pkg/contextx"
	"rating-service/pkg/logx"
)

const defaultBulkConcurrency = 8

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Validator interface {
	Validate(entity.QuoteRequest) []string
}

type Assessor interface {
	Assess(entity.QuoteRequest) entity.RiskProfile
}

type Pricer interface {
	CalculatePremium(entity.QuoteRequest, entity.RiskProfile) entity.Quote
}

type Recorder interface {
	QuoteIssued(entity.Quote)
	QuoteRejected(value.PolicyType)
	QuoteFailed()
	BulkEvaluated(size int)
}

// Service runs the validate -> assess -> price pipeline for single requests
// and for batches.
type Service struct {
	validator       Validator
	assessor        Assessor
	pricer          Pricer
	recorder        Recorder
	bulkConcurrency int
}

func NewService(validator Validator, assessor Assessor, pricer Pricer) *Service {
	return &Service{
		validator:       validator,
		assessor:        assessor,
		pricer:          pricer,
		recorder:        nopRecorder{},
		bulkConcurrency: defaultBulkConcurrency,
	}
}

func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) WithBulkConcurrency(n int) *Service {
	if n > 0 {
		s.bulkConcurrency = n
	}

	return s
}

// Quote prices a single request. A request failing validation yields a
// *domain.ValidationError; any failure past validation yields
// domain.ErrCalculationFailed.
func (s *Service) Quote(ctx context.Context, req entity.QuoteRequest) (entity.Quote, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		s.recorder.QuoteRejected(req.PolicyType)

		logger(ctx).Info(
			"quote request rejected",
			slog.String(logx.FieldCustomerID, req.CustomerID),
			slog.String(logx.FieldPolicyType, req.PolicyType.String()),
			slog.Any(logx.FieldValidationErrors, errs),
		)

		return entity.Quote{}, domain.NewValidationError(errs)
	}

	quote, err := s.price(ctx, req)
	if err != nil {
		s.recorder.QuoteFailed()

		return entity.Quote{}, err
	}

	s.recorder.QuoteIssued(quote)

	logger(ctx).Info(
		"quote issued",
		logx.Stringer(logx.FieldQuoteID, quote.ID),
		slog.String(logx.FieldPolicyType, quote.PolicyType.String()),
		slog.String(logx.FieldRiskGrade, quote.RiskGrade.String()),
		slog.Float64(logx.FieldAnnualPremium, quote.AnnualPremium),
	)

	return quote, nil
}

// BulkQuote prices every request independently and returns one result per
// request, in input order. A failing item never affects its siblings.
func (s *Service) BulkQuote(ctx context.Context, reqs []entity.QuoteRequest) []entity.BulkResult {
	results := make([]entity.BulkResult, len(reqs))

	var g errgroup.Group

	g.SetLimit(s.bulkConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			results[i] = s.evaluate(ctx, req)
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // items never return errors

	s.recorder.BulkEvaluated(len(reqs))

	return results
}

func (s *Service) evaluate(ctx context.Context, req entity.QuoteRequest) entity.BulkResult {
	quote, err := s.Quote(ctx, req)
	if err == nil {
		return entity.BulkResult{Quote: &quote}
	}

	if messages, ok := domain.ValidationMessages(err); ok {
		return entity.BulkResult{ValidationErrors: messages}
	}

	return entity.BulkResult{Err: err}
}

func (s *Service) price(ctx context.Context, req entity.QuoteRequest) (quote entity.Quote, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"quote calculation panicked",
				slog.String(logx.FieldCustomerID, req.CustomerID),
				slog.String(logx.FieldError, fmt.Sprint(rec)),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			err = domain.ErrCalculationFailed
		}
	}()

	profile := s.assessor.Assess(req)

	return s.pricer.CalculatePremium(req, profile), nil
}

type nopRecorder struct{}

func (nopRecorder) QuoteIssued(entity.Quote)       {}
func (nopRecorder) QuoteRejected(value.PolicyType) {}
func (nopRecorder) QuoteFailed()                   {}
func (nopRecorder) BulkEvaluated(int)              {}
