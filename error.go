package webscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	// EINVALID marks input rejected before any network I/O.
	EINVALID = "invalid"

	// ENOCONTENT marks a retrieval that succeeded but produced no document.
	ENOCONTENT = "no_content"

	// EFETCH marks any failure during retrieval or extraction.
	EFETCH = "fetch_failed"

	EINTERNAL = "internal"
)

// Error represents an application-specific error. Code is one of the
// constants above; Message is safe to show to callers.
type Error struct {
	Code    string
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webscrape error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with the given code whose message is the
// cause's own text, passed through verbatim.
func WrapError(code string, err error) *Error {
	return &Error{
		Code:    code,
		Message: err.Error(),
		Err:     err,
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
