// Package errors provides sentinel errors and custom error types for the ai-cli application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the ai-cli binary
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Sentinel errors for common conditions
var (
	// ErrUsage indicates that the command line could not be parsed
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownInvocation indicates that the dispatcher was handed an invocation it does not know
	ErrUnknownInvocation = errors.New("unknown invocation")
)

// UsageError represents a malformed command line for a given command
type UsageError struct {
	CommandPath string
	Err         error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid usage of %s", e.CommandPath)
	}
	return e.Err.Error()
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new UsageError
func NewUsageError(commandPath string, err error) *UsageError {
	return &UsageError{
		CommandPath: commandPath,
		Err:         err,
	}
}

// UnknownInvocationError represents an invocation the dispatcher cannot handle
type UnknownInvocationError struct {
	Name string
}

func (e *UnknownInvocationError) Error() string {
	if e.Name == "" {
		return "no invocation to dispatch"
	}
	return fmt.Sprintf("cannot dispatch invocation %q", e.Name)
}

// Is returns true if the target error is ErrUnknownInvocation
func (e *UnknownInvocationError) Is(target error) bool {
	return target == ErrUnknownInvocation
}

// NewUnknownInvocationError creates a new UnknownInvocationError
func NewUnknownInvocationError(name string) *UnknownInvocationError {
	return &UnknownInvocationError{Name: name}
}

// ExitCode maps an error returned from command execution to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
