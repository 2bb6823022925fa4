package entity

import (
	"time"

	"rating-service/internal/domain/value"
)

// QuoteRequest is a policy application as received from the customer.
// Dates are calendar dates at midnight UTC.
type QuoteRequest struct {
	CustomerID      string
	CustomerType    value.CustomerType
	PolicyType      value.PolicyType
	CoverageAmount  float64
	Deductible      float64
	StartDate       time.Time
	EndDate         time.Time
	Region          *string
	Industry        *string
	ClaimsHistory   int
	YearsInBusiness *int
}

// DurationDays is the policy term in calendar days.
func (r QuoteRequest) DurationDays() int {
	return value.DaysBetween(r.StartDate, r.EndDate)
}

// RegionName returns the region or an empty string when none was supplied.
func (r QuoteRequest) RegionName() string {
	if r.Region == nil {
		return ""
	}

	return *r.Region
}

// IndustryName returns the industry or an empty string when none was supplied.
func (r QuoteRequest) IndustryName() string {
	if r.Industry == nil {
		return ""
	}

	return *r.Industry
}
