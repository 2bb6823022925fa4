package logx

const (
	FieldAnnualPremium    = "annual-premium"
	FieldAppName          = "app-name"
	FieldAppVersion       = "app-version"
	FieldBulkSize         = "bulk-size"
	FieldCustomerID       = "customer-id"
	FieldDurationMs       = "duration-ms"
	FieldError            = "error"
	FieldHTTPMethod       = "http-method"
	FieldHTTPRequest      = "http-request"
	FieldHTTPResponse     = "http-response"
	FieldIP               = "ip"
	FieldPolicyType       = "policy-type"
	FieldQuoteID          = "quote-id"
	FieldRequestBody      = "request-body"
	FieldRequestID        = "request-id"
	FieldResponseBody     = "response-body"
	FieldResponseHeaders  = "response-headers"
	FieldResponseStatus   = "response-status"
	FieldRiskGrade        = "risk-grade"
	FieldStack            = "stack"
	FieldTraceID          = "trace-id"
	FieldURL              = "url"
	FieldValidationErrors = "validation-errors"
)
