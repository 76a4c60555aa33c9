package config

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultBatchSize is the number of GetRandom requests issued per run.
	DefaultBatchSize = 100

	// DefaultShutdownGrace is how long Close waits for the generator to exit
	// on its own before killing it.
	DefaultShutdownGrace = 2 * time.Second
)

// Options configures the controller.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// GeneratorPath is an explicit path to the generator binary.
	// If empty, the binary is discovered (see package discovery).
	GeneratorPath string

	// BatchSize is the number of values requested by Run.
	// Zero means DefaultBatchSize.
	BatchSize int

	// Stderr receives the generator's standard error.
	// If nil, the child inherits the controller's stderr.
	Stderr io.Writer

	// ShutdownGrace bounds how long Close waits for a clean exit.
	// Zero means DefaultShutdownGrace.
	ShutdownGrace time.Duration

	// Transport allows injecting a custom transport implementation.
	// If nil, the default subprocess transport is created automatically.
	Transport Transport
}

// EffectiveBatchSize returns BatchSize or its default.
func (o *Options) EffectiveBatchSize() int {
	if o == nil || o.BatchSize <= 0 {
		return DefaultBatchSize
	}

	return o.BatchSize
}

// EffectiveShutdownGrace returns ShutdownGrace or its default.
func (o *Options) EffectiveShutdownGrace() time.Duration {
	if o == nil || o.ShutdownGrace <= 0 {
		return DefaultShutdownGrace
	}

	return o.ShutdownGrace
}
