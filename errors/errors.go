// Package errors provides sentinel errors and custom error types for the utilkit library.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidArgument indicates that an input lies outside a function's documented domain
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidArgumentError represents an error when an input falls outside a function's documented domain
type InvalidArgumentError struct {
	Func   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid argument: %s", e.Func, e.Reason)
	}
	return fmt.Sprintf("%s: invalid argument", e.Func)
}

// Is returns true if the target error is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(fn string, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Func:   fn,
		Reason: reason,
	}
}
