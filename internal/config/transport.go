// Package config provides configuration types for the controller.
package config

import "context"

// Transport defines the interface for talking to a generator.
// Implement this to provide custom transports for testing, mocking,
// or alternative communication methods (e.g., an in-process pipe).
//
// The default implementation is subprocess.Transport which spawns the
// generator binary. Custom transports can be injected via Options.Transport.
//
// A Transport is used by exactly one goroutine; implementations need not be
// safe for concurrent use of WriteLine and ReadLine.
type Transport interface {
	// Start launches the generator and prepares both streams.
	// It does not check that the generator answers.
	Start(ctx context.Context) error

	// WriteLine writes line plus a newline and flushes it, so the generator
	// observes it immediately.
	WriteLine(ctx context.Context, line string) error

	// ReadLine blocks until one full line is available and returns it
	// without the terminator. There is no read timeout.
	ReadLine(ctx context.Context) (string, error)

	// Exited reports, without blocking, whether the generator has already
	// exited and with which code.
	Exited() (bool, int)

	// Close releases the generator. It's safe to call Close multiple times.
	Close() error
}
