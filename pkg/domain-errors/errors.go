// Package domainerrors provides coded errors for the service layer.
//
// Stores return sentinel errors (pkg/platform/sentinel); services translate
// them into coded errors here; HTTP handlers map codes to status lines via
// ToHTTPStatus. Renderers and handlers never see raw store or transport
// errors, only a code plus a human-readable message.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure for HTTP mapping and caller branching.
type Code string

const (
	// CodeBadRequest marks input the caller must correct.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a missing row or slug; empty content, not a fault.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness collision.
	CodeConflict Code = "conflict"
	// CodeUnavailable marks a missing or unreachable backing resource.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks an operation that failed for any other reason.
	CodeInternal Code = "internal"
)

// Error carries a code, a message safe to show users, and an optional cause
// kept for diagnostics only.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Details returns the cause message for diagnostic envelopes, or "".
func (e *Error) Details() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

// New builds a coded error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode at call sites that test one code.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP status line.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
