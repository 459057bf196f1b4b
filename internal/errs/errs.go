// Package errs defines the closed set of error types the API can return.
//
// Every failure surfaced to a client is an *HTTPError carrying a category
// name, an HTTP status code, and a human-readable message. The global error
// handler serializes it inside a stable JSON envelope so clients always see
// the same error shape, regardless of where the failure happened.
package errs

import (
	"net/http"
	"strings"
)

// Error category names. These are part of the API contract: clients branch
// on `error.name`, so the set is closed and the strings are stable.
const (
	NameInput    = "InputError"
	NameRange    = "RangeError"
	NameNotFound = "NotFoundError"
	NameInternal = "InternalError"
)

// HTTPError is the error type for API responses.
//
// It implements the `error` interface and is designed to be serialized
// directly as the payload of the error envelope.
type HTTPError struct {
	// Name is the machine-friendly error category (e.g. "InputError").
	Name string `json:"name"`

	// Status is the HTTP status code the response will carry.
	Status int `json:"status"`

	// Message is the human-friendly description.
	Message string `json:"message"`
}

// Response is the JSON envelope written for any 4xx/5xx response:
//
//	{"error": {"name": ..., "status": ..., "message": ...}}
type Response struct {
	Error *HTTPError `json:"error"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so that
// errors.Is(err, &HTTPError{}) matches any API error. It deliberately does
// not compare Name or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// The receiver is not mutated.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Name:    e.Name,
		Status:  e.Status,
		Message: message,
	}
}

// NewInputError creates a 422 error for a parameter that is not a usable
// number (non-numeric or non-integer input).
func NewInputError(message string) *HTTPError {
	return &HTTPError{
		Name:    NameInput,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewRangeError creates a 422 error for a parameter that parsed as an
// integer but falls outside the accepted bounds.
func NewRangeError(message string) *HTTPError {
	return &HTTPError{
		Name:    NameRange,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewNotFoundError creates a 404 error, used for unmatched routes.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Name:    NameNotFound,
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NameFromStatus derives a category name from an HTTP status code, e.g.
// 405 -> "MethodNotAllowedError". Used for framework-raised statuses that
// fall outside the core taxonomy; 404 maps onto NameNotFound.
func NameFromStatus(status int) string {
	return strings.ReplaceAll(http.StatusText(status), " ", "") + "Error"
}

// NewInternalServerError creates a 500 error.
//
// The message is always the generic status text: clients never see the real
// internal error, which stays in the logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Name:    NameInternal,
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
