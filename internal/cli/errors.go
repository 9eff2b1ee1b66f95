package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the livingdoc binary.
const (
	ExitSuccess     = 0
	ExitError       = 1 // General error (unreadable input, write failure)
	ExitNotFound    = 3 // No feature files found
	ExitConfigError = 4 // Configuration error
)

// ExitCodeError is an error that carries an exit code.
type ExitCodeError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewExitCodeError creates a new ExitCodeError with the given code and message.
func NewExitCodeError(code int, message string) *ExitCodeError {
	return &ExitCodeError{Code: code, Message: message}
}

// WrapExitCodeError wraps an existing error with an exit code.
func WrapExitCodeError(code int, message string, err error) *ExitCodeError {
	return &ExitCodeError{Code: code, Message: message, Err: err}
}

// NotFoundError creates a not found error (exit code 3).
func NotFoundError(message string) *ExitCodeError {
	return NewExitCodeError(ExitNotFound, message)
}

// ConfigError creates a configuration error (exit code 4).
func ConfigError(message string) *ExitCodeError {
	return NewExitCodeError(ExitConfigError, message)
}

// GetExitCode returns the exit code from an error.
// If the error wraps an ExitCodeError, returns its code.
// Otherwise, returns 1 (general error).
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// errorCode returns the machine-readable code reported by FormatError.
func errorCode(err error) string {
	switch GetExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitConfigError:
		return "CONFIG_ERROR"
	default:
		return "ERROR"
	}
}
