// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// QuoteRequest Заявка на расчёт страховой премии
type QuoteRequest struct {
	CustomerID      string  `json:"customer_id" yaml:"customer_id"`
	CustomerType    string  `json:"customer_type" yaml:"customer_type" validate:"required"`
	PolicyType      string  `json:"policy_type" yaml:"policy_type" validate:"required"`
	CoverageAmount  float64 `json:"coverage_amount" yaml:"coverage_amount" validate:"gt=0"`
	Deductible      float64 `json:"deductible" yaml:"deductible" validate:"gte=0"`
	StartDate       string  `json:"start_date" yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" yaml:"end_date" validate:"required,datetime=2006-01-02"`
	Region          *string `json:"region,omitempty" yaml:"region,omitempty"`
	Industry        *string `json:"industry,omitempty" yaml:"industry,omitempty"`
	ClaimsHistory   int     `json:"claims_history" yaml:"claims_history" validate:"gte=0"`
	YearsInBusiness *int    `json:"years_in_business,omitempty" yaml:"years_in_business,omitempty"`
}

// BulkQuoteRequest Пакет заявок; каждая заявка рассчитывается независимо
type BulkQuoteRequest []QuoteRequest

type Surcharge struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
}

// QuoteResponse Рассчитанное предложение
type QuoteResponse struct {
	QuoteID        string      `json:"quote_id"`
	CustomerID     string      `json:"customer_id"`
	PolicyType     string      `json:"policy_type"`
	AnnualPremium  float64     `json:"annual_premium"`
	MonthlyPremium float64     `json:"monthly_premium"`
	CoverageAmount float64     `json:"coverage_amount"`
	Deductible     float64     `json:"deductible"`
	RiskGrade      string      `json:"risk_grade"`
	ValidUntil     string      `json:"valid_until"`
	Exclusions     []string    `json:"exclusions"`
	Surcharges     []Surcharge `json:"surcharges"`
}

type BulkStatus string

const (
	BulkStatusSuccess BulkStatus = "success"
	BulkStatusError   BulkStatus = "error"
)

// BulkQuoteItem Результат одной заявки пакета: quote при успехе, errors при
// отказе андеррайтинга, error при внутренней ошибке
type BulkQuoteItem struct {
	Status BulkStatus     `json:"status"`
	Quote  *QuoteResponse `json:"quote,omitempty"`
	Errors []string       `json:"errors,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`

	// Details Перечень нарушенных правил андеррайтинга
	Details []string `json:"details,omitempty"`
}

// ErrorCode Код ошибки
type ErrorCode string
