package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryAnchor Category = "anchor"
	CategoryLookup Category = "lookup"
	CategoryInput  Category = "input"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// TooltipError is a structured error with a code, an explanation and a hint.
type TooltipError struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type (anchor, lookup, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TooltipError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TooltipError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a TooltipError with the same code.
// This lets callers match with errors.Is(err, errors.New("T002")).
func (e *TooltipError) Is(target error) bool {
	t, ok := target.(*TooltipError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TooltipError) WithSuggestion(s string) *TooltipError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *TooltipError) WithDetail(d string) *TooltipError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *TooltipError) WithDetailf(format string, args ...any) *TooltipError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// Wrap wraps another error.
func (e *TooltipError) Wrap(err error) *TooltipError {
	e.Wrapped = err
	return e
}

// New creates a TooltipError from a registered error code.
func New(code string) *TooltipError {
	template, ok := registry[code]
	if !ok {
		return &TooltipError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TooltipError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new TooltipError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TooltipError {
	return &TooltipError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TooltipError.
func FromError(err error, code string) *TooltipError {
	if err == nil {
		return nil
	}
	var te *TooltipError
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first TooltipError in err's chain, or "".
func CodeOf(err error) string {
	var te *TooltipError
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}
