package entity

import (
	"slices"

	"rating-service/internal/domain/value"
)

// RiskProfile is the outcome of a risk assessment. Factor values are rounded
// to three decimal places; Grade was derived from the unrounded factors.
type RiskProfile struct {
	BaseRiskScore  float64
	LocationFactor float64
	ClaimsFactor   float64
	IndustryFactor float64
	Grade          value.RiskGrade
	Flags          []value.RiskFlag
}

func (p RiskProfile) HasFlag(flag value.RiskFlag) bool {
	return slices.Contains(p.Flags, flag)
}
