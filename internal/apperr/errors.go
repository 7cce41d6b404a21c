// Package apperr defines the typed failures the service and handler
// layers exchange. Every error that crosses the service boundary is one
// of these kinds; the error-handler middleware maps anything else to a
// 500.
package apperr

import (
	"errors"
	"net/http"
)

// Error carries an HTTP status and a client-safe message. Cause holds
// the underlying error for server-side logging and is never serialized.
type Error struct {
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is / errors.As traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Internal wraps an unexpected server-side error. The cause is kept for
// logging; clients only ever see the generic message.
func Internal(cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
		Cause:   cause,
	}
}

// As extracts the *Error from err's chain, or nil if there is none.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
