// Package apperr defines the error taxonomy shared by all features.
// Each failed operation carries exactly one Kind; the transport layer maps
// the Kind to an HTTP status and response envelope, so internal store errors
// never reach a client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Internal is an unexpected failure (store I/O, bugs). Surfaces as 500.
	Internal Kind = iota
	// Validation is a request with missing or malformed fields.
	Validation
	// Authentication is a credential check failure (signin, password change).
	Authentication
	// Unauthorized is a missing, malformed, expired or revoked session token.
	Unauthorized
	// Forbidden is an authenticated request for a resource it does not own.
	Forbidden
	// NotFound is a request for a resource that does not exist.
	NotFound
	// Conflict is an attempt to create a resource that already exists.
	Conflict
)

// HTTPStatus returns the status code a Kind maps to at the boundary.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Authentication, Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error. Fields is populated only for
// Validation errors and enumerates the offending fields.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a classified error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation creates a Validation error with per-field messages.
func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: Validation, Message: "Bad Request", Fields: fields}
}

// KindOf extracts the Kind from err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// FieldsOf extracts the per-field messages from err, or nil.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// MessageOf extracts the client-facing message from err. Unclassified errors
// get a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal Server Error"
}
