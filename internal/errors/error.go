package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryUsage      Category = "usage"
	CategoryProtocol   Category = "protocol"
	CategoryValidation Category = "validation"
)

// ReflowError is a structured error with a stable code, a suggestion, and
// a documentation link.
type ReflowError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, usage, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ReflowError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ReflowError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ReflowError) WithSuggestion(s string) *ReflowError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ReflowError) WithDetail(d string) *ReflowError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *ReflowError) Wrap(err error) *ReflowError {
	e.Wrapped = err
	return e
}

// New creates a ReflowError from a registered error code.
func New(code string) *ReflowError {
	template, ok := registry[code]
	if !ok {
		return &ReflowError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ReflowError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a ReflowError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *ReflowError {
	return &ReflowError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ReflowError.
func FromError(err error, code string) *ReflowError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*ReflowError); ok {
		return re
	}
	return New(code).Wrap(err)
}
