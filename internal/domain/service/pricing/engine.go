package pricing

import (
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
)

const (
	premiumPrecision = 2
	daysPerYear      = 365
	monthsPerYear    = 12
	minimumPremium   = 500.0
	quoteValidDays   = 30

	defaultRiskMultiplier = 2.0

	floodSurchargeRate     = 0.002
	claimsSurchargeRate    = 0.001
	claimsSurchargeFrom    = 3
	cyberSurchargeCoverage = 5_000_000
	cyberSurchargeAmount   = 10_000.0
	aviationSurchargeRate  = 0.003
)

type deductibleDiscount struct {
	threshold float64
	discount  float64
}

//nolint:gochecknoglobals
var (
	baseRates = map[value.PolicyType]float64{
		value.PolicyTypeProperty:  0.003,
		value.PolicyTypeLiability: 0.005,
		value.PolicyTypeMarine:    0.008,
		value.PolicyTypeCyber:     0.012,
		value.PolicyTypeAviation:  0.015,
	}

	riskMultipliers = map[value.RiskGrade]float64{
		value.RiskGradeLow:      1.0,
		value.RiskGradeMedium:   1.5,
		value.RiskGradeHigh:     2.5,
		value.RiskGradeCritical: 4.0,
	}

	// Ascending by threshold.
	deductibleDiscounts = []deductibleDiscount{
		{threshold: 1000, discount: 0.0},
		{threshold: 5000, discount: 0.05},
		{threshold: 10000, discount: 0.10},
		{threshold: 25000, discount: 0.15},
		{threshold: 50000, discount: 0.20},
	}

	conflictRegions = []string{"conflict_zone", "sanctioned_territory"}
)

// Engine prices a quote request from its risk profile. Apart from the quote
// id and the expiry date the result depends only on its inputs.
type Engine struct {
	clock clock.Clock
	newID func() uuid.UUID
}

func NewEngine(clk clock.Clock) *Engine {
	return &Engine{
		clock: clk,
		newID: uuid.New,
	}
}

// WithIDGenerator replaces the quote id source. The generator must be safe
// for concurrent use.
func (e *Engine) WithIDGenerator(newID func() uuid.UUID) *Engine {
	e.newID = newID
	return e
}

func (e *Engine) CalculatePremium(req entity.QuoteRequest, profile entity.RiskProfile) entity.Quote {
	premium := req.CoverageAmount * BaseRate(req.PolicyType)
	premium *= RiskMultiplier(profile.Grade)
	premium *= 1 - DeductibleDiscount(req.Deductible)
	premium = Annualize(premium, req.DurationDays())
	premium = max(premium, minimumPremium)

	surcharges := surcharges(req, profile)
	premium += lo.SumBy(surcharges, func(s entity.Surcharge) float64 { return s.Amount })

	return entity.Quote{
		ID:             e.newID(),
		CustomerID:     req.CustomerID,
		PolicyType:     req.PolicyType,
		AnnualPremium:  value.Round(premium, premiumPrecision),
		MonthlyPremium: value.Round(premium/monthsPerYear, premiumPrecision),
		CoverageAmount: req.CoverageAmount,
		Deductible:     req.Deductible,
		RiskGrade:      profile.Grade,
		ValidUntil:     value.AddDays(e.clock.Now(), quoteValidDays),
		Exclusions:     exclusions(req, profile),
		Surcharges:     surcharges,
	}
}

func BaseRate(policy value.PolicyType) float64 {
	return baseRates[policy]
}

func RiskMultiplier(grade value.RiskGrade) float64 {
	if m, ok := riskMultipliers[grade]; ok {
		return m
	}

	return defaultRiskMultiplier
}

// DeductibleDiscount returns the discount of the highest threshold not above
// the deductible, or zero below the lowest threshold.
func DeductibleDiscount(deductible float64) float64 {
	discount := 0.0

	for _, d := range deductibleDiscounts {
		if deductible >= d.threshold {
			discount = d.discount
		}
	}

	return discount
}

// Annualize scales a premium for a term of days to its one-year equivalent.
// A 365-day term is returned untouched.
func Annualize(premium float64, days int) float64 {
	factor := float64(days) / daysPerYear
	if factor == 1 {
		return premium
	}

	return premium / factor
}

func surcharges(req entity.QuoteRequest, profile entity.RiskProfile) []entity.Surcharge {
	var out []entity.Surcharge

	if profile.HasFlag(value.RiskFlagFloodZone) {
		out = append(out, entity.Surcharge{
			Reason: "Flood zone location",
			Amount: req.CoverageAmount * floodSurchargeRate,
		})
	}

	if req.ClaimsHistory > claimsSurchargeFrom {
		out = append(out, entity.Surcharge{
			Reason: "Adverse claims history",
			Amount: req.CoverageAmount * claimsSurchargeRate * float64(req.ClaimsHistory),
		})
	}

	if req.PolicyType == value.PolicyTypeCyber && req.CoverageAmount > cyberSurchargeCoverage {
		out = append(out, entity.Surcharge{
			Reason: "High-value cyber coverage",
			Amount: cyberSurchargeAmount,
		})
	}

	if req.PolicyType == value.PolicyTypeAviation {
		out = append(out, entity.Surcharge{
			Reason: "Aviation hull war risk",
			Amount: req.CoverageAmount * aviationSurchargeRate,
		})
	}

	return out
}

func exclusions(req entity.QuoteRequest, profile entity.RiskProfile) []string {
	var out []string

	if profile.Grade == value.RiskGradeCritical {
		out = append(out, "Acts of war and terrorism", "Pre-existing conditions")
	}

	switch req.PolicyType {
	case value.PolicyTypeProperty:
		if profile.HasFlag(value.RiskFlagFloodZone) {
			out = append(out, "Flood damage (separate policy required)")
		}

		out = append(out, "Normal wear and tear")
	case value.PolicyTypeCyber:
		out = append(out, "Nation-state attacks", "Unpatched known vulnerabilities (>90 days)")
	case value.PolicyTypeAviation:
		out = append(out, "Manufacturer defects under recall")

		// No region means no conflict-zone exposure.
		if lo.Contains(conflictRegions, strings.ToLower(req.RegionName())) {
			out = append(out, "Operations in conflict zones")
		}
	case value.PolicyTypeLiability, value.PolicyTypeMarine:
	}

	return out
}
