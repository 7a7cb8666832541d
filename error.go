package postforge

import (
	"errors"
	"fmt"
)

// Error codes distinguish input mistakes from external-service failures
// from output-quality failures, so callers can pick different retry and
// messaging strategies per kind.
const (
	ECANCELED        = "canceled"           // run canceled at a suspension point
	EEMPTYPLATFORMS  = "empty_platform_set" // no platforms requested
	EEXTRACTION      = "extraction_invalid" // completion output fails the content schema
	EFETCH           = "fetch"              // scrape capability failure
	EGENERATION      = "generation_invalid" // completion output fails the post schema
	EINTERNAL        = "internal"           // internal error
	EINVALID         = "invalid"            // validation failed
	EINVALIDURL      = "invalid_url"        // malformed input URL, caught before any I/O
	EPOSTINVALID     = "post_invalid"       // post violates a platform constraint
	EUNKNOWNPLATFORM = "unknown_platform"   // platform absent from the registry
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise; prefer ErrorCode and ErrorMessage for introspection.
func (e *Error) Error() string {
	return fmt.Sprintf("postforge error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an Error with formatted message text.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
