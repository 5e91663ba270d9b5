package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotConfigured indicates the routed provider has no usable client
	ErrProviderNotConfigured = errors.New("LLM provider not configured")

	// ErrEmptyCompletion indicates the provider returned no text
	ErrEmptyCompletion = errors.New("empty completion")
)

// ErrorKind classifies provider failures for retry decisions.
type ErrorKind string

const (
	// ErrorKindTransient is a retryable infrastructure failure (5xx, timeouts)
	ErrorKindTransient ErrorKind = "transient"
	// ErrorKindRateLimited is a 429; retryable with backoff
	ErrorKindRateLimited ErrorKind = "rate_limited"
	// ErrorKindAuth is an authentication/authorization failure; not retryable
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindInvalidRequest is a malformed request; not retryable
	ErrorKindInvalidRequest ErrorKind = "invalid_request"
	// ErrorKindSchemaMismatch means output failed schema validation; fail fast,
	// never silently accept malformed operations
	ErrorKindSchemaMismatch ErrorKind = "schema_mismatch"
)

// Error is a classified LLM failure.
type Error struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

// Error returns formatted error message
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("llm %s (%s): %v", e.Kind, e.Provider, e.Err)
	}
	return fmt.Sprintf("llm %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified LLM error.
func NewError(kind ErrorKind, provider string, err error) *Error {
	return &Error{Kind: kind, Provider: provider, Err: err}
}

// IsRetryable reports whether the error is worth retrying with backoff.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrorKindTransient || e.Kind == ErrorKindRateLimited
	}
	return false
}

// IsSchemaMismatch reports whether the error is a schema validation failure.
func IsSchemaMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrorKindSchemaMismatch
}
