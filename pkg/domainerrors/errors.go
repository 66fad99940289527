// Package domainerrors carries machine-readable error codes across layer
// boundaries so transport and callers can react without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	CodeNotAuthenticated Code = "not_authenticated"
	CodeNotFound         Code = "not_found"
	CodeNotOwned         Code = "not_owned"
	CodeValidation       Code = "validation"
	CodeUnavailable      Code = "unavailable"
	CodePartialFailure   Code = "partial_failure"
	CodeTimeout          Code = "timeout"
	CodeInternal         Code = "internal"
)

// Error is a coded domain error. It supports errors.Is on the code via Is.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.wrapped }

// Is reports code equality so sentinel comparisons like
// errors.Is(err, domainerrors.New(CodeNotFound, "")) work across layers.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New builds a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message, preserving the chain.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, wrapped: err}
}

// CodeOf extracts the code from err, or CodeInternal for uncoded errors.
// A nil err has no code and returns the empty string.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
