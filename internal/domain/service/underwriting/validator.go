package underwriting

import (
	"fmt"
	"math"
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
)

const (
	maxDurationDays       = 1095
	maxStartLeadDays      = 90
	maxDeductibleShare    = 0.5
	individualCoverageCap = 10_000_000
	currencySymbol        = "£"
)

// Aviation has neither a coverage ceiling nor a deductible floor.
var (
	maxCoverage = map[value.PolicyType]float64{ //nolint:gochecknoglobals
		value.PolicyTypeProperty:  100_000_000,
		value.PolicyTypeLiability: 50_000_000,
		value.PolicyTypeMarine:    200_000_000,
		value.PolicyTypeCyber:     25_000_000,
	}

	minDeductible = map[value.PolicyType]float64{ //nolint:gochecknoglobals
		value.PolicyTypeProperty:  1000,
		value.PolicyTypeLiability: 5000,
		value.PolicyTypeMarine:    10000,
		value.PolicyTypeCyber:     5000,
	}
)

// Validator checks a quote request against underwriting rules. It never
// fails: every violated rule contributes one message, in a fixed order.
type Validator struct {
	clock clock.Clock
}

func NewValidator(clk clock.Clock) Validator {
	return Validator{
		clock: clk,
	}
}

func (v Validator) Validate(req entity.QuoteRequest) []string {
	var errs []string

	errs = append(errs, v.validateDates(req)...)
	errs = append(errs, validateCoverage(req)...)
	errs = append(errs, validateDeductible(req)...)
	errs = append(errs, validateBusinessRules(req)...)

	return errs
}

func (v Validator) validateDates(req entity.QuoteRequest) []string {
	var errs []string

	today := value.Date(v.clock.Now())

	if req.StartDate.Before(today) {
		errs = append(errs, "Start date cannot be in the past")
	}

	if !req.EndDate.After(req.StartDate) {
		errs = append(errs, "End date must be after start date")
	}

	if req.DurationDays() > maxDurationDays {
		errs = append(errs, "Policy duration cannot exceed 3 years")
	}

	if req.StartDate.After(value.AddDays(today, maxStartLeadDays)) {
		errs = append(errs, "Start date cannot be more than 90 days in the future")
	}

	return errs
}

func validateCoverage(req entity.QuoteRequest) []string {
	limit, ok := maxCoverage[req.PolicyType]
	if !ok || req.CoverageAmount <= limit {
		return nil
	}

	return []string{fmt.Sprintf(
		"Coverage amount exceeds maximum for %s: %s > %s",
		req.PolicyType, formatCurrency(req.CoverageAmount), formatCurrency(limit),
	)}
}

func validateDeductible(req entity.QuoteRequest) []string {
	var errs []string

	if floor, ok := minDeductible[req.PolicyType]; ok && req.Deductible < floor {
		errs = append(errs, fmt.Sprintf(
			"Deductible below minimum for %s: %s < %s",
			req.PolicyType, formatCurrency(req.Deductible), formatCurrency(floor),
		))
	}

	if req.Deductible > req.CoverageAmount*maxDeductibleShare {
		errs = append(errs, "Deductible cannot exceed 50% of coverage amount")
	}

	return errs
}

func validateBusinessRules(req entity.QuoteRequest) []string {
	var errs []string

	if req.CustomerType == value.CustomerTypeIndividual && req.CoverageAmount > individualCoverageCap {
		errs = append(errs, "Individual customers limited to £10M coverage")
	}

	if req.PolicyType == value.PolicyTypeMarine && req.IndustryName() == "" {
		errs = append(errs, "Marine policies require industry specification")
	}

	return errs
}

// formatCurrency renders whole pounds with thousands separators, e.g. £5,000,000.
// Amounts beyond the int64 range are printed in full.
func formatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return currencySymbol + humanize.Commaf(amount)
	}

	whole, _ := big.NewFloat(math.RoundToEven(amount)).Int(nil)

	return currencySymbol + humanize.BigComma(whole)
}
