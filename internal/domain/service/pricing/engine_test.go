package pricing_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/service/pricing"
	"rating-service/internal/domain/value"
)

//nolint:gochecknoglobals
var (
	now     = time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)
	start   = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	quoteID = uuid.MustParse("6f1d3c1e-8a8b-4b7e-9a51-0d5c0e0f9a11")
)

func newEngine() *pricing.Engine {
	clk := clock.NewMock()
	clk.Set(now)

	return pricing.NewEngine(clk).WithIDGenerator(func() uuid.UUID { return quoteID })
}

func TestEngine_CalculatePremium(t *testing.T) {
	testCases := []struct {
		name    string
		req     entity.QuoteRequest
		profile entity.RiskProfile
		check   func(rq *require.Assertions, q entity.Quote)
	}{
		{
			name: "Low risk property without proration",
			req: entity.QuoteRequest{
				CustomerID:     "CUST-A",
				CustomerType:   value.CustomerTypeCorporate,
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 5_000_000,
				Deductible:     10_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
				Region:         lo.ToPtr("london"),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal(quoteID, q.ID)
				rq.Equal("CUST-A", q.CustomerID)
				rq.Equal(value.PolicyTypeProperty, q.PolicyType)
				rq.Equal(13500.0, q.AnnualPremium)
				rq.Equal(1125.0, q.MonthlyPremium)
				rq.Equal(5_000_000.0, q.CoverageAmount)
				rq.Equal(10_000.0, q.Deductible)
				rq.Equal(value.RiskGradeLow, q.RiskGrade)
				rq.Equal(time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC), q.ValidUntil)
				rq.Equal([]string{"Normal wear and tear"}, q.Exclusions)
				rq.Empty(q.Surcharges)
			},
		},
		{
			name: "Critical cyber with surcharges",
			req: entity.QuoteRequest{
				CustomerID:     "CUST-B",
				CustomerType:   value.CustomerTypeIndividual,
				PolicyType:     value.PolicyTypeCyber,
				CoverageAmount: 20_000_000,
				Deductible:     5_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
				Region:         lo.ToPtr("flood_plain"),
				ClaimsHistory:  7,
			},
			profile: entity.RiskProfile{
				Grade: value.RiskGradeCritical,
				Flags: []value.RiskFlag{value.RiskFlagFloodZone, value.RiskFlagExcessiveClaims},
			},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal(1102000.0, q.AnnualPremium)
				rq.Equal(91833.33, q.MonthlyPremium)
				rq.Equal([]string{
					"Acts of war and terrorism",
					"Pre-existing conditions",
					"Nation-state attacks",
					"Unpatched known vulnerabilities (>90 days)",
				}, q.Exclusions)
				rq.Len(q.Surcharges, 3)
				rq.Equal("Flood zone location", q.Surcharges[0].Reason)
				rq.InDelta(40_000, q.Surcharges[0].Amount, 1e-6)
				rq.Equal("Adverse claims history", q.Surcharges[1].Reason)
				rq.InDelta(140_000, q.Surcharges[1].Amount, 1e-6)
				rq.Equal("High-value cyber coverage", q.Surcharges[2].Reason)
				rq.InDelta(10_000, q.Surcharges[2].Amount, 1e-6)
			},
		},
		{
			name: "Minimum premium floor",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 10_000,
				Deductible:     1_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal(500.0, q.AnnualPremium)
				rq.Equal(41.67, q.MonthlyPremium)
			},
		},
		{
			name: "Annual premium rounds the exact binary value",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 1_000_005,
				Deductible:     1_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				// 3000.015 is stored just below the half cent
				rq.Equal(3000.01, q.AnnualPremium)
				rq.Equal(250.0, q.MonthlyPremium)
			},
		},
		{
			name: "Monthly premium on a binary half cent",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 1_000_020,
				Deductible:     1_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal(3000.06, q.AnnualPremium)
				rq.Equal(250.0, q.MonthlyPremium)
			},
		},
		{
			name: "Monthly premium divides the unrounded annual",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 1_000_020.8,
				Deductible:     1_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				// 3000.0624 / 12 = 250.0052, while 3000.06 / 12 would give 250.00
				rq.Equal(3000.06, q.AnnualPremium)
				rq.Equal(250.01, q.MonthlyPremium)
			},
		},
		{
			name: "Short term is annualized",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeLiability,
				CoverageAmount: 1_000_000,
				Deductible:     5_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 73),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeMedium},
			check: func(rq *require.Assertions, q entity.Quote) {
				// 1,000,000 x 0.005 x 1.5 x 0.95 / (73 / 365)
				rq.Equal(35625.0, q.AnnualPremium)
				rq.Equal(2968.75, q.MonthlyPremium)
			},
		},
		{
			name: "Flooded property excludes flood damage",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeProperty,
				CoverageAmount: 2_000_000,
				Deductible:     50_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
				Region:         lo.ToPtr("flood_plain"),
			},
			profile: entity.RiskProfile{
				Grade: value.RiskGradeHigh,
				Flags: []value.RiskFlag{value.RiskFlagFloodZone},
			},
			check: func(rq *require.Assertions, q entity.Quote) {
				// 2,000,000 x 0.003 x 2.5 x 0.8 + 4,000 flood surcharge
				rq.Equal(16000.0, q.AnnualPremium)
				rq.Equal([]string{"Flood damage (separate policy required)", "Normal wear and tear"}, q.Exclusions)
			},
		},
		{
			name: "Aviation in a conflict zone",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeAviation,
				CoverageAmount: 1_000_000,
				Deductible:     0,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
				Region:         lo.ToPtr("Conflict_Zone"),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal(18000.0, q.AnnualPremium)
				rq.Len(q.Surcharges, 1)
				rq.Equal("Aviation hull war risk", q.Surcharges[0].Reason)
				rq.InDelta(3_000, q.Surcharges[0].Amount, 1e-6)
				rq.Equal([]string{"Manufacturer defects under recall", "Operations in conflict zones"}, q.Exclusions)
			},
		},
		{
			name: "Aviation without region",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeAviation,
				CoverageAmount: 1_000_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGradeLow},
			check: func(rq *require.Assertions, q entity.Quote) {
				rq.Equal([]string{"Manufacturer defects under recall"}, q.Exclusions)
			},
		},
		{
			name: "Unknown grade uses default multiplier",
			req: entity.QuoteRequest{
				PolicyType:     value.PolicyTypeMarine,
				CoverageAmount: 1_000_000,
				Deductible:     10_000,
				StartDate:      start,
				EndDate:        value.AddDays(start, 365),
			},
			profile: entity.RiskProfile{Grade: value.RiskGrade("unrated")},
			check: func(rq *require.Assertions, q entity.Quote) {
				// 1,000,000 x 0.008 x 2.0 x 0.9
				rq.Equal(14400.0, q.AnnualPremium)
				rq.Empty(q.Exclusions)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			tc.check(rq, newEngine().CalculatePremium(tc.req, tc.profile))
		})
	}
}

func TestDeductibleDiscount(t *testing.T) {
	testCases := []struct {
		deductible float64
		want       float64
	}{
		{deductible: 0, want: 0},
		{deductible: 999.99, want: 0},
		{deductible: 1_000, want: 0},
		{deductible: 4_999, want: 0},
		{deductible: 5_000, want: 0.05},
		{deductible: 10_000, want: 0.10},
		{deductible: 24_999, want: 0.10},
		{deductible: 25_000, want: 0.15},
		{deductible: 50_000, want: 0.20},
		{deductible: 1_000_000, want: 0.20},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, pricing.DeductibleDiscount(tc.deductible), "deductible %v", tc.deductible)
	}
}

func TestRiskMultiplier(t *testing.T) {
	rq := require.New(t)

	rq.Equal(1.0, pricing.RiskMultiplier(value.RiskGradeLow))
	rq.Equal(1.5, pricing.RiskMultiplier(value.RiskGradeMedium))
	rq.Equal(2.5, pricing.RiskMultiplier(value.RiskGradeHigh))
	rq.Equal(4.0, pricing.RiskMultiplier(value.RiskGradeCritical))
	rq.Equal(2.0, pricing.RiskMultiplier(""))
}

func TestEngine_Properties(t *testing.T) {
	grades := []value.RiskGrade{value.RiskGradeLow, value.RiskGradeMedium, value.RiskGradeHigh, value.RiskGradeCritical}

	rapid.Check(t, func(rt *rapid.T) {
		rq := require.New(rt)

		d1 := rapid.Float64Range(0, 200_000).Draw(rt, "d1")
		d2 := rapid.Float64Range(d1, 400_000).Draw(rt, "d2")
		rq.LessOrEqual(pricing.DeductibleDiscount(d1), pricing.DeductibleDiscount(d2))

		coverage := rapid.Float64Range(1, 300_000_000).Draw(rt, "coverage")
		req := entity.QuoteRequest{
			PolicyType:     rapid.SampledFrom(value.PolicyTypes()).Draw(rt, "policy_type"),
			CoverageAmount: coverage,
			Deductible:     rapid.Float64Range(0, coverage/2).Draw(rt, "deductible"),
			StartDate:      start,
			EndDate:        value.AddDays(start, rapid.IntRange(1, 1095).Draw(rt, "days")),
			ClaimsHistory:  rapid.IntRange(0, 20).Draw(rt, "claims"),
		}
		profile := entity.RiskProfile{Grade: rapid.SampledFrom(grades).Draw(rt, "grade")}

		q := newEngine().CalculatePremium(req, profile)

		annual := req.CoverageAmount * pricing.BaseRate(req.PolicyType)
		annual *= pricing.RiskMultiplier(profile.Grade)
		annual *= 1 - pricing.DeductibleDiscount(req.Deductible)
		annual = max(pricing.Annualize(annual, req.DurationDays()), 500)
		annual += lo.SumBy(q.Surcharges, func(s entity.Surcharge) float64 { return s.Amount })

		rq.GreaterOrEqual(q.AnnualPremium, 500.0)
		rq.Equal(value.Round(annual, 2), q.AnnualPremium)
		rq.Equal(value.Round(annual/12, 2), q.MonthlyPremium)
		rq.Equal(value.Round(q.AnnualPremium, 2), q.AnnualPremium)
		rq.Equal(value.Round(q.MonthlyPremium, 2), q.MonthlyPremium)
		rq.Len(lo.Uniq(q.Exclusions), len(q.Exclusions))
	})
}
