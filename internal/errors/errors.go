// Package errors provides standardized domain errors that express client intent
// rather than transport details. Every failure surfaced by the library is either one
// of the sentinel kinds below or a coded *Error that unwraps to one of them, so callers
// can branch with errors.Is on the kind and on Code without parsing message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error kinds shared by all modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates credentials could not be resolved or exchanged for an identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransport indicates a network failure or a non-success response from the vault.
	ErrTransport = errors.New("transport error")

	// ErrPartialBatch indicates a bulk operation where some of the items failed.
	ErrPartialBatch = errors.New("partial batch failure")
)

// Code is a stable, machine-readable identifier for a specific failure rule.
type Code string

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Codes shared across modules.
const (
	CodeNetworkError Code = "NetworkError"
	CodeHTTPError    Code = "HTTPError"
	CodeInternal     Code = "InternalError"
	CodePartialBatch Code = "PartialBatch"
)

// coder is implemented by error types outside this package that carry a code.
type coder interface {
	ErrorCode() Code
}

// Error is a coded error. Kind is one of the sentinel errors of this package.
type Error struct {
	Kind       error
	Code       Code
	Message    string
	HTTPStatus int
	GRPCCode   int
	RequestID  string
	Details    []any
	cause      error
}

// Error returns the templated human-readable message prefixed by the code.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.HTTPStatus != 0 {
		fmt.Fprintf(&b, " (http_status=%d", e.HTTPStatus)
		if e.RequestID != "" {
			fmt.Fprintf(&b, ", request_id=%s", e.RequestID)
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// WithCause returns a copy of the error carrying the given cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// NewCoded creates a coded error of the given kind with a formatted message.
func NewCoded(kind error, code Code, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidInput creates a coded ErrInvalidInput error.
func InvalidInput(code Code, format string, args ...any) *Error {
	return NewCoded(ErrInvalidInput, code, format, args...)
}

// Unauthorized creates a coded ErrUnauthorized error.
func Unauthorized(code Code, format string, args ...any) *Error {
	return NewCoded(ErrUnauthorized, code, format, args...)
}

// CodeOf returns the code of the first *Error found in err's tree, or an empty code.
// Error types that implement ErrorCode() Code are consulted when no *Error is found.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsConfigError reports whether err is a registry configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
