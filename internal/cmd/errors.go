package cmd

import "errors"

// Process exit codes
const (
	ExitSuccess      = 0
	ExitConfigError  = 1 // Bad arguments, flags or options
	ExitRuntimeError = 2 // The search itself failed, e.g. unreadable file
)

// ExitError carries the process exit code for a failed invocation
type ExitError struct {
	Code int
	Err  error
}

// NewConfigError wraps a configuration failure
func NewConfigError(err error) *ExitError {
	return &ExitError{Code: ExitConfigError, Err: err}
}

// NewRuntimeError wraps a failure that happened after the configuration was accepted
func NewRuntimeError(err error) *ExitError {
	return &ExitError{Code: ExitRuntimeError, Err: err}
}

// Error implements the error interface
func (e *ExitError) Error() string {
	if e.Code == ExitRuntimeError {
		return "Application error: " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitConfigError
}
