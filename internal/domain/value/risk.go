package value

// RiskGrade is the coarse banding of a composite risk score.
type RiskGrade string

const (
	RiskGradeLow      RiskGrade = "low"
	RiskGradeMedium   RiskGrade = "medium"
	RiskGradeHigh     RiskGrade = "high"
	RiskGradeCritical RiskGrade = "critical"
)

func (g RiskGrade) String() string {
	return string(g)
}

// RiskFlag marks a condition that needs underwriter attention regardless of
// the numeric score.
type RiskFlag string

const (
	RiskFlagFloodZone        RiskFlag = "flood_zone"
	RiskFlagExcessiveClaims  RiskFlag = "excessive_claims"
	RiskFlagHighValuePolicy  RiskFlag = "high_value_policy"
	RiskFlagHighRiskIndustry RiskFlag = "high_risk_industry"
	RiskFlagLongTermPolicy   RiskFlag = "long_term_policy"
)

func (f RiskFlag) String() string {
	return string(f)
}
