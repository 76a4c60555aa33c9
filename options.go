package randctl

import (
	"io"
	"log/slog"
	"time"

	"github.com/wagiedev/randctl-go/internal/config"
)

// Options configures a Controller.
type Options = config.Options

// DefaultBatchSize is the number of values Run requests unless overridden.
const DefaultBatchSize = config.DefaultBatchSize

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithGeneratorPath sets the explicit path to the randgen binary.
// If not set, the binary is discovered.
func WithGeneratorPath(path string) Option {
	return func(o *Options) {
		o.GeneratorPath = path
	}
}

// WithBatchSize sets how many values Run requests.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		o.BatchSize = n
	}
}

// WithStderr redirects the generator's standard error.
// If not set, the generator inherits this process's stderr.
func WithStderr(w io.Writer) Option {
	return func(o *Options) {
		o.Stderr = w
	}
}

// WithShutdownGrace bounds how long Close waits for the generator to exit
// before killing it.
func WithShutdownGrace(d time.Duration) Option {
	return func(o *Options) {
		o.ShutdownGrace = d
	}
}

// WithTransport injects a custom transport implementation.
// The transport must implement the Transport interface.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		o.Transport = transport
	}
}
