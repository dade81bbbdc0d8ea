// Package errors provides structured error handling for the semlog CLI.
// Errors carry a category that maps one-to-one onto the process exit code.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Format errors are caused by a malformed or invalid changelog document.
	Format ErrorCategory = iota
	// AlreadyExists errors occur when init targets a file that is present.
	AlreadyExists
	// Argument errors are caused by invalid or missing command arguments.
	Argument
	// Unexpected errors are the defensive catch-all for everything else.
	Unexpected
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Format:
		return "Format Error"
	case AlreadyExists:
		return "Already Exists"
	case Argument:
		return "Argument Error"
	case Unexpected:
		return "Unexpected Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with a category and optional usage hint.
type CLIError struct {
	// Category is the type of error (Format, AlreadyExists, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Err is the wrapped underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is/As matching.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates a new argument error.
func NewArgumentError(message string) *CLIError {
	return &CLIError{Category: Argument, Message: message}
}

// NewArgumentErrorWithUsage creates an argument error that includes the
// correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage}
}

// Wrap wraps an existing error with a CLIError, preserving the original
// message and keeping the cause reachable through errors.Is.
func Wrap(err error, category ErrorCategory) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Err: err}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: fmt.Sprintf("%s: %v", message, err), Err: err}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
