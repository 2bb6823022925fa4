package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError    failure.ErrorCode = "InternalServerError"
	TimeoutExceeded        failure.ErrorCode = "TimeoutExceeded"
	Forbidden              failure.ErrorCode = "Forbidden"
	ValidationError        failure.ErrorCode = "ValidationError"
	NotFound               failure.ErrorCode = "NotFound"
	InvalidPolicyType      failure.ErrorCode = "InvalidPolicyType"
	InvalidCustomerType    failure.ErrorCode = "InvalidCustomerType"
	InvalidDate            failure.ErrorCode = "InvalidDate"
	QuoteRejected          failure.ErrorCode = "QuoteRejected"
	QuoteCalculationFailed failure.ErrorCode = "QuoteCalculationFailed"
	BulkTooLarge           failure.ErrorCode = "BulkTooLarge"
	EmptyBulk              failure.ErrorCode = "EmptyBulk"
)
