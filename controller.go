package randctl

import (
	"context"

	"github.com/wagiedev/randctl-go/internal/controller"
)

// Controller owns one generator subprocess for one run.
//
// Lifecycle: a Controller is single-use. Run sends Shutdown, so create a
// new Controller for every batch and Close it when done.
type Controller = controller.Controller

// New launches a generator and returns a Controller for it.
//
// New does not check that the generator answers; Run (or
// CheckChildProcess) does. Returns GeneratorNotFoundError if the binary
// cannot be located, or StartError if it fails to launch.
func New(ctx context.Context, opts ...Option) (*Controller, error) {
	return controller.New(ctx, applyOptions(opts))
}

// Run launches a generator, collects one batch and releases the generator.
//
// The values are sorted ascending. Any failure aborts the whole run and no
// values are returned. If Close fails, a warning is logged but does not
// override the run's result.
func Run(ctx context.Context, opts ...Option) ([]int, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	ctrl, err := controller.New(ctx, options)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := ctrl.Close(); closeErr != nil {
			log.Warn("failed to close controller", "error", closeErr)
		}
	}()

	return ctrl.Run(ctx)
}
