package cartes

import (
	"errors"

	"github.com/simple-maps/cartes-go/internal/types"
)

// Error kinds re-exported so consumers compare against a single set of
// symbols. Exactly four kinds of failure can surface from a call, all
// synchronously; the client never swallows, logs-and-ignores, or
// retries any of them.
type (
	// ValidationError is returned before any network call when a
	// payload violates a documented field constraint. It carries every
	// violated field, not just the first.
	ValidationError = types.ValidationError
	// FieldViolation is one rejected field inside a ValidationError.
	FieldViolation = types.FieldViolation
	// ViolationKind classifies a FieldViolation.
	ViolationKind = types.ViolationKind

	// APIError is a non-2xx service response: status code plus the
	// error body verbatim.
	APIError = types.APIError
	// TransportError is a network-level failure; Unwrap exposes the
	// cause.
	TransportError = types.TransportError
	// MalformedResponseError is a 2xx response missing a field the
	// method's contract requires.
	MalformedResponseError = types.MalformedResponseError
)

const (
	OutOfRange      = types.OutOfRange
	InvalidEnum     = types.InvalidEnum
	MissingRequired = types.MissingRequired
	WrongType       = types.WrongType
)

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAPIError reports whether err is an APIError, returning it when so.
func IsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsMalformedResponse reports whether err is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var mr *MalformedResponseError
	return errors.As(err, &mr)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	ae, ok := IsAPIError(err)
	return ok && ae.StatusCode == 404
}
