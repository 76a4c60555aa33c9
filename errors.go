package randctl

import "github.com/wagiedev/randctl-go/internal/errors"

// Re-export error types from internal package

// ControllerError is the base interface for all controller errors.
type ControllerError = errors.ControllerError

// ProcessTerminatedError indicates the generator exited before a command was issued.
type ProcessTerminatedError = errors.ProcessTerminatedError

// UnexpectedResponseError indicates the health probe got a reply other than "Hi".
type UnexpectedResponseError = errors.UnexpectedResponseError

// CommunicationError indicates an I/O failure while talking to the generator.
type CommunicationError = errors.CommunicationError

// InvalidResponseError indicates a response line was not an integer.
type InvalidResponseError = errors.InvalidResponseError

// GeneratorNotFoundError indicates the generator binary was not found.
type GeneratorNotFoundError = errors.GeneratorNotFoundError

// StartError indicates the generator subprocess could not be launched.
type StartError = errors.StartError

// Re-export sentinel errors from internal package.
var (
	// ErrTransportNotStarted indicates the transport has no running generator.
	ErrTransportNotStarted = errors.ErrTransportNotStarted

	// ErrTransportClosed indicates the transport has been closed.
	ErrTransportClosed = errors.ErrTransportClosed
)
