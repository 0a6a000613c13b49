package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the chlog CLI. Kept to the two values release scripts
// rely on: anything that fails, fails with 1.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates any validation, usage, or runtime failure.
	ExitFailure = 1
)

// ExitError carries a process exit code through cobra's error return for
// commands that have already written their own diagnostics.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
