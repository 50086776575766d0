package jobcrawl

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are propagated from the layer that detects a failure to the caller;
// nothing is retried or swallowed internally. ETIMEOUT and EUNAVAILABLE
// describe transient network conditions the caller may retry; the rest are
// not retryable without changing the input or configuration.
const (
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ETIMEOUT      = "timeout"
	ETOOLARGE     = "too_large"
	EUNAUTHORIZED = "unauthorized"
	EUNAVAILABLE  = "unavailable"
	EUNSUPPORTED  = "unsupported"
)

// Error represents an application-specific error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not user friendly.
func (e *Error) Error() string {
	return fmt.Sprintf("jobcrawl error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
