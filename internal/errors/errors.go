package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ControllerError is the base interface for all controller errors.
type ControllerError interface {
	error
	IsControllerError() bool
}

// Compile-time verification that all error types implement ControllerError.
var (
	_ ControllerError = (*ProcessTerminatedError)(nil)
	_ ControllerError = (*UnexpectedResponseError)(nil)
	_ ControllerError = (*CommunicationError)(nil)
	_ ControllerError = (*InvalidResponseError)(nil)
	_ ControllerError = (*GeneratorNotFoundError)(nil)
	_ ControllerError = (*StartError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrTransportNotStarted indicates the transport has no running child.
	ErrTransportNotStarted = errors.New("transport not started")

	// ErrTransportClosed indicates the transport has been closed.
	ErrTransportClosed = errors.New("transport closed")
)

// ProcessTerminatedError indicates the generator exited before a command
// could be issued.
type ProcessTerminatedError struct {
	ExitCode int
}

func (e *ProcessTerminatedError) Error() string {
	return fmt.Sprintf("generator subprocess is not running/has terminated (exit %d)", e.ExitCode)
}

// IsControllerError implements ControllerError.
func (e *ProcessTerminatedError) IsControllerError() bool { return true }

// UnexpectedResponseError indicates the health probe got something other
// than "Hi" back.
type UnexpectedResponseError struct {
	Response string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from generator subprocess: %q", e.Response)
}

// IsControllerError implements ControllerError.
func (e *UnexpectedResponseError) IsControllerError() bool { return true }

// CommunicationError indicates an I/O failure while talking to the generator.
type CommunicationError struct {
	// Op names the exchange that failed, e.g. "health check" or "fetch".
	Op  string
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("error communicating with generator subprocess during %s: %v", e.Op, e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// IsControllerError implements ControllerError.
func (e *CommunicationError) IsControllerError() bool { return true }

// InvalidResponseError indicates a response line was not a base-10 integer.
type InvalidResponseError struct {
	Response string
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response received, not an integer: %q", e.Response)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// IsControllerError implements ControllerError.
func (e *InvalidResponseError) IsControllerError() bool { return true }

// GeneratorNotFoundError indicates the generator binary was not found.
type GeneratorNotFoundError struct {
	SearchedPaths []string
}

func (e *GeneratorNotFoundError) Error() string {
	return fmt.Sprintf("generator binary not found in: %s", strings.Join(e.SearchedPaths, ", "))
}

// IsControllerError implements ControllerError.
func (e *GeneratorNotFoundError) IsControllerError() bool { return true }

// StartError indicates the generator subprocess could not be launched.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start generator subprocess: %v", e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// IsControllerError implements ControllerError.
func (e *StartError) IsControllerError() bool { return true }
