package risk

import (
	"strings"

	"github.com/samber/lo"

	"rating-service/internal/domain/entity"
	"rating-service/internal/domain/value"
)

const (
	factorPrecision = 3

	largeCoverage  = 10_000_000
	mediumCoverage = 1_000_000
	highValue      = 50_000_000

	tenuredYears = 10

	highDeductible   = 25_000
	mediumDeductible = 10_000

	longTermDays = 730
)

//nolint:gochecknoglobals
var (
	hazardRegions = []string{"flood_plain", "earthquake_zone", "hurricane_coast"}

	highRiskIndustries = []string{"mining", "construction", "oil_gas", "aviation"}

	cyberExposedIndustries = []string{"healthcare", "finance", "retail"}

	regionFactors = map[string]float64{
		"london":          1.2,
		"manchester":      1.0,
		"edinburgh":       0.9,
		"birmingham":      1.0,
		"bristol":         0.95,
		"flood_plain":     2.0,
		"earthquake_zone": 2.5,
		"hurricane_coast": 2.2,
	}
)

// Assessor scores a validated quote request with a multiplicative
// multi-factor model. It keeps no state and is safe for concurrent use.
type Assessor struct{}

func NewAssessor() Assessor {
	return Assessor{}
}

func (a Assessor) Assess(req entity.QuoteRequest) entity.RiskProfile {
	base := baseScore(req)
	location := locationFactor(req.RegionName())
	claims := claimsFactor(req.ClaimsHistory)
	industry := industryFactor(req.IndustryName(), req.PolicyType)

	return entity.RiskProfile{
		BaseRiskScore:  value.Round(base, factorPrecision),
		LocationFactor: value.Round(location, factorPrecision),
		ClaimsFactor:   value.Round(claims, factorPrecision),
		IndustryFactor: value.Round(industry, factorPrecision),
		Grade:          Grade(base * location * claims * industry),
		Flags:          flags(req),
	}
}

// Grade maps a composite risk score onto a risk grade.
func Grade(score float64) value.RiskGrade {
	switch {
	case score <= 1.0:
		return value.RiskGradeLow
	case score <= 2.0:
		return value.RiskGradeMedium
	case score <= 3.5:
		return value.RiskGradeHigh
	default:
		return value.RiskGradeCritical
	}
}

func baseScore(req entity.QuoteRequest) float64 {
	score := 1.0

	switch {
	case req.CoverageAmount > largeCoverage:
		score *= 1.5
	case req.CoverageAmount > mediumCoverage:
		score *= 1.2
	}

	switch req.CustomerType {
	case value.CustomerTypeIndividual:
		score *= 1.1
	case value.CustomerTypeCorporate:
		score *= 0.9
	case value.CustomerTypeSME:
	}

	if req.YearsInBusiness != nil && *req.YearsInBusiness > tenuredYears {
		score *= 0.85
	}

	// A higher deductible leaves less exposure with the insurer.
	switch {
	case req.Deductible >= highDeductible:
		score *= 0.8
	case req.Deductible >= mediumDeductible:
		score *= 0.9
	}

	return score
}

// locationFactor treats an unknown or absent region as neutral.
func locationFactor(region string) float64 {
	if factor, ok := regionFactors[strings.ToLower(region)]; ok {
		return factor
	}

	return 1.0
}

func claimsFactor(claims int) float64 {
	switch {
	case claims == 0:
		return 0.8
	case claims <= 2:
		return 1.0
	case claims <= 5:
		return 1.5
	default:
		return 2.5
	}
}

func industryFactor(industry string, policy value.PolicyType) float64 {
	if industry == "" {
		return 1.0
	}

	industry = strings.ToLower(industry)

	if lo.Contains(highRiskIndustries, industry) {
		return 1.8
	}

	if policy == value.PolicyTypeCyber && lo.Contains(cyberExposedIndustries, industry) {
		return 1.4
	}

	return 1.0
}

func flags(req entity.QuoteRequest) []value.RiskFlag {
	var out []value.RiskFlag

	if lo.Contains(hazardRegions, strings.ToLower(req.RegionName())) {
		out = append(out, value.RiskFlagFloodZone)
	}

	if req.ClaimsHistory > 5 {
		out = append(out, value.RiskFlagExcessiveClaims)
	}

	if req.CoverageAmount > highValue {
		out = append(out, value.RiskFlagHighValuePolicy)
	}

	if lo.Contains(highRiskIndustries, strings.ToLower(req.IndustryName())) {
		out = append(out, value.RiskFlagHighRiskIndustry)
	}

	if req.DurationDays() > longTermDays {
		out = append(out, value.RiskFlagLongTermPolicy)
	}

	return out
}
