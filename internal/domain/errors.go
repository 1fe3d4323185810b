package domain

import "errors"

// Sentinel error kinds. Every failure surfaced by the transport or the
// stores is a *Error whose Kind is one of these, so callers classify
// failures with errors.Is:
//
//	if errors.Is(err, domain.ErrNotFound) { ... }
var (
	// ErrValidation indicates a required argument was missing. No
	// request was sent.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the backend reported envelope code 404.
	ErrNotFound = errors.New("resource not found")

	// ErrRuleViolation indicates the operation is not allowed in the
	// resource's current state, such as selecting an offline server.
	ErrRuleViolation = errors.New("domain rule violated")

	// ErrUnauthorized indicates the backend rejected the credentials.
	// The stored token has already been cleared.
	ErrUnauthorized = errors.New("authentication required")

	// ErrRateLimited indicates the backend throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrRequest covers every other envelope or transport failure.
	ErrRequest = errors.New("request failed")
)

// Error is a classified failure with a human-readable message.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Message is what the user sees. It is never empty.
	Message string

	// Code is the envelope code when the backend answered with one.
	Code int

	// Status is the HTTP status when the failure happened at the HTTP layer.
	Status int

	// Err is the underlying transport error, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the transport cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewValidationError reports a missing or malformed argument.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewRuleError reports an operation refused by a domain rule.
func NewRuleError(message string) *Error {
	return &Error{Kind: ErrRuleViolation, Message: message}
}

// ErrServerOffline is returned when selecting a server that is not online.
var ErrServerOffline = NewRuleError("Cannot connect to offline server")
