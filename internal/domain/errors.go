package domain

import (
	"errors"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"rating-service/pkg/errcodes"
)

// ErrCalculationFailed is reported in place of any unexpected failure during
// risk assessment or pricing. The cause is logged, never returned to callers.
var ErrCalculationFailed error = &calculationError{ //nolint:gochecknoglobals
	cause: failure.NewInternalServerError(
		"quote calculation failed",
		failure.WithCode(errcodes.QuoteCalculationFailed),
		failure.WithDescription("Quote calculation failed"),
	),
}

// calculationError gives the internal failure a comparable identity for
// errors.Is; failure values themselves are not comparable.
type calculationError struct {
	cause error
}

func (e *calculationError) Error() string {
	return e.cause.Error()
}

func (e *calculationError) Unwrap() error {
	return e.cause
}

// ValidationError carries the ordered underwriting messages of a rejected
// quote request.
type ValidationError struct {
	Messages []string
	cause    error
}

// NewValidationError wraps the messages in an unprocessable entity failure so
// transports can map it without knowing the domain.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{
		Messages: messages,
		cause: failure.NewUnprocessableEntityError(
			"quote request rejected",
			failure.WithCode(errcodes.QuoteRejected),
			failure.WithDescription("Quote request failed underwriting validation"),
		),
	}
}

func (e *ValidationError) Error() string {
	return "quote request rejected: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Details exposes the messages to error renderers.
func (e *ValidationError) Details() []string {
	return e.Messages
}

// ValidationMessages extracts the underwriting messages from err, if any.
func ValidationMessages(err error) ([]string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, true
	}

	return nil, false
}
