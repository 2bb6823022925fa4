package server

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
	"rating-service/pkg/errcodes"
	"rating-service/pkg/lox"
	"rating-service/pkg/rest"
)

const bulkItemFailure = "quote calculation failed"

// NewDomainQuoteRequest converts a transport request into the domain model.
// Enumerations and dates that cannot be parsed are invalid arguments.
func NewDomainQuoteRequest(r rest.QuoteRequest) (entity.QuoteRequest, error) {
	customerType, err := value.ParseCustomerType(r.CustomerType)
	if err != nil {
		return entity.QuoteRequest{}, invalidArgument(
			fmt.Errorf("value.ParseCustomerType: %w", err), errcodes.InvalidCustomerType,
		)
	}

	policyType, err := value.ParsePolicyType(r.PolicyType)
	if err != nil {
		return entity.QuoteRequest{}, invalidArgument(
			fmt.Errorf("value.ParsePolicyType: %w", err), errcodes.InvalidPolicyType,
		)
	}

	startDate, err := value.ParseDate(r.StartDate)
	if err != nil {
		return entity.QuoteRequest{}, invalidArgument(fmt.Errorf("start_date: %w", err), errcodes.InvalidDate)
	}

	endDate, err := value.ParseDate(r.EndDate)
	if err != nil {
		return entity.QuoteRequest{}, invalidArgument(fmt.Errorf("end_date: %w", err), errcodes.InvalidDate)
	}

	return entity.QuoteRequest{
		CustomerID:      r.CustomerID,
		CustomerType:    customerType,
		PolicyType:      policyType,
		CoverageAmount:  r.CoverageAmount,
		Deductible:      r.Deductible,
		StartDate:       startDate,
		EndDate:         endDate,
		Region:          r.Region,
		Industry:        r.Industry,
		ClaimsHistory:   r.ClaimsHistory,
		YearsInBusiness: r.YearsInBusiness,
	}, nil
}

func NewDomainQuoteRequests(rs []rest.QuoteRequest) ([]entity.QuoteRequest, error) {
	out, err := lox.MapErr(rs, NewDomainQuoteRequest)
	if err != nil {
		return nil, fmt.Errorf("NewDomainQuoteRequest: %w", err)
	}

	return out, nil
}

func NewRESTQuote(q entity.Quote) rest.QuoteResponse {
	return rest.QuoteResponse{
		QuoteID:        q.ID.String(),
		CustomerID:     q.CustomerID,
		PolicyType:     q.PolicyType.String(),
		AnnualPremium:  q.AnnualPremium,
		MonthlyPremium: q.MonthlyPremium,
		CoverageAmount: q.CoverageAmount,
		Deductible:     q.Deductible,
		RiskGrade:      q.RiskGrade.String(),
		ValidUntil:     q.ValidUntil.Format(value.DateLayout),
		Exclusions:     append([]string{}, q.Exclusions...),
		Surcharges:     lox.Map(q.Surcharges, newRESTSurcharge),
	}
}

func NewRESTBulkItems(results []entity.BulkResult) []rest.BulkQuoteItem {
	return lox.Map(results, newRESTBulkItem)
}

func newRESTBulkItem(result entity.BulkResult) rest.BulkQuoteItem {
	switch {
	case result.OK():
		quote := NewRESTQuote(*result.Quote)

		return rest.BulkQuoteItem{Status: rest.BulkStatusSuccess, Quote: &quote}
	case len(result.ValidationErrors) > 0:
		return rest.BulkQuoteItem{Status: rest.BulkStatusError, Errors: result.ValidationErrors}
	default:
		return rest.BulkQuoteItem{Status: rest.BulkStatusError, Error: bulkItemFailure}
	}
}

func newRESTSurcharge(s entity.Surcharge) rest.Surcharge {
	return rest.Surcharge{
		Reason: s.Reason,
		Amount: s.Amount,
	}
}

func invalidArgument(err error, code failure.ErrorCode) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(code),
		failure.WithDescription(err.Error()),
	)
}
