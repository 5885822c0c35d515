package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Error Taxonomy
// ------------------------------
//
// Four kinds of failure can surface from a client call, all of them
// synchronously: ValidationError before the wire, APIError for a
// non-2xx status, TransportError for network-level failures, and
// MalformedResponseError for a 2xx body that does not satisfy the
// calling method's return contract. None are retried.

// ViolationKind classifies a single rejected field.
type ViolationKind string

const (
	OutOfRange      ViolationKind = "out_of_range"
	InvalidEnum     ViolationKind = "invalid_enum"
	MissingRequired ViolationKind = "missing_required"
	WrongType       ViolationKind = "wrong_type"
)

// FieldViolation is one rejected field in a payload. Field is the wire
// name, not the Go field name.
type FieldViolation struct {
	Field   string
	Kind    ViolationKind
	Message string
}

// ValidationError reports every violated field of a payload in one
// error, so the caller sees all problems at once. It is returned before
// any request is sent.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError from explicit violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// MissingField is shorthand for the single-violation error used when a
// call-level requirement (a resource token or API key) is absent.
func MissingField(field, message string) *ValidationError {
	return NewValidationError(FieldViolation{Field: field, Kind: MissingRequired, Message: message})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the error contains a violation of the given kind
// for the named field.
func (e *ValidationError) Has(field string, kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}

// APIError is a non-2xx response from the service. Body carries the
// error body verbatim; the client applies no interpretation.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// TransportError is a network-level failure: DNS, connection refused,
// TLS, timeout, or context cancellation. Unwrap exposes the cause.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a 2xx response that was undecodable or
// lacked a field the method's contract requires to report success.
type MalformedResponseError struct {
	Endpoint string
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response: %s: %v", e.Endpoint, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: malformed response: %s", e.Endpoint, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
