// Package apperror defines the error taxonomy every operation funnels into
// before a response is written: validation, auth, not-found and upstream.
// Raw store or media-store errors never cross the HTTP boundary.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindNotFound
	KindUpstream
)

// Error carries a caller-safe message and the kind used for status mapping.
// The wrapped cause stays internal (logs only).
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewUpstream wraps an internal failure behind a fixed message. The cause is
// preserved for logging but never serialized.
func NewUpstream(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, cause: cause}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusOf maps an error to the HTTP status of its kind. Anything outside the
// taxonomy is treated as an upstream failure.
func StatusOf(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the caller-safe message for an error. Errors outside the
// taxonomy collapse to a generic message so internals never leak.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// Retryable reports whether the caller may retry the failed request.
func Retryable(err error) bool {
	return IsKind(err, KindUpstream)
}
