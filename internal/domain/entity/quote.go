package entity

import (
	"time"

	"github.com/google/uuid"

	"rating-service/internal/domain/value"
)

type Surcharge struct {
	Reason string
	Amount float64
}

// Quote is a priced offer for a single QuoteRequest.
type Quote struct {
	ID             uuid.UUID
	CustomerID     string
	PolicyType     value.PolicyType
	AnnualPremium  float64
	MonthlyPremium float64
	CoverageAmount float64
	Deductible     float64
	RiskGrade      value.RiskGrade
	ValidUntil     time.Time
	Exclusions     []string
	Surcharges     []Surcharge
}
