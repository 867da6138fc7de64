// Package app provides the application structure and coordination for
// the regexplore tool.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no backend configured")

	// ErrEmptyPattern indicates a search was requested without a
	// pattern. Caught before the match engine is invoked.
	ErrEmptyPattern = errors.New("no pattern provided")

	// ErrEmptyContent indicates a search was requested without text.
	// Caught before the match engine is invoked.
	ErrEmptyContent = errors.New("no text provided")

	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")
)

// OperationError represents an error during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "search", "load-samples")
	Target string // Target of the operation (e.g., pattern, file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
