package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender Category = "render"
	CategoryMount  Category = "mount"
	CategoryHost   Category = "host"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// RangeError is a structured error with a code, an explanation and a hint.
type RangeError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, mount, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RangeError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *RangeError with the same code.
func (e *RangeError) Is(target error) bool {
	t, ok := target.(*RangeError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RangeError) WithSuggestion(s string) *RangeError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *RangeError) WithExample(ex string) *RangeError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *RangeError) WithDetail(d string) *RangeError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *RangeError) Wrap(err error) *RangeError {
	e.Wrapped = err
	return e
}

// New creates a RangeError from a registered error code.
func New(code string) *RangeError {
	template, ok := registry[code]
	if !ok {
		return &RangeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RangeError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new RangeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *RangeError {
	return &RangeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a RangeError.
func FromError(err error, code string) *RangeError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*RangeError); ok {
		return re
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error it wraps, is a RangeError with
// the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if re, ok := err.(*RangeError); ok && re.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
