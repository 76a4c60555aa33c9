package controller

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/randctl-go/internal/config"
	"github.com/wagiedev/randctl-go/internal/errors"
	"github.com/wagiedev/randctl-go/internal/protocol"
	"github.com/wagiedev/randctl-go/internal/subprocess"
)

// Controller owns one generator for the duration of a run.
type Controller struct {
	log       *slog.Logger
	transport config.Transport
	options   *config.Options
	runID     string
}

// New creates a controller and launches its generator.
//
// If options.Transport is set it is started instead of spawning the
// generator binary. New does not check that the generator answers; that is
// CheckChildProcess's job.
func New(ctx context.Context, options *config.Options) (*Controller, error) {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runID := ulid.Make().String()
	log = log.With("run_id", runID)

	transport := options.Transport
	if transport == nil {
		transport = subprocess.NewTransport(log, options)
	}

	log = log.With("component", "controller")

	if err := transport.Start(ctx); err != nil {
		log.Error("Failed to start generator", "error", err)

		return nil, err
	}

	return &Controller{
		log:       log,
		transport: transport,
		options:   options,
		runID:     runID,
	}, nil
}

// RunID returns the identifier attached to this controller's log records.
func (c *Controller) RunID() string {
	return c.runID
}

// CheckChildProcess verifies the generator is alive and answering.
//
// It fails with ProcessTerminatedError, before any I/O, if the generator
// has already exited. Otherwise it sends Hi and expects Hi back; any other
// reply is an UnexpectedResponseError and any I/O failure a
// CommunicationError.
func (c *Controller) CheckChildProcess(ctx context.Context) error {
	if exited, code := c.transport.Exited(); exited {
		c.log.Error("Generator already exited", "exit_code", code)

		return &errors.ProcessTerminatedError{ExitCode: code}
	}

	response, err := c.roundTrip(ctx, protocol.CommandHi)
	if err != nil {
		return &errors.CommunicationError{Op: "health check", Err: err}
	}

	if response != protocol.ResponseHi {
		c.log.Error("Unexpected health check response", "response", response)

		return &errors.UnexpectedResponseError{Response: response}
	}

	c.log.Debug("Generator is healthy")

	return nil
}

// FetchRandomNumbers issues count GetRandom requests in lockstep and returns
// the raw, unvalidated response lines in order.
//
// The first I/O failure aborts the fetch; no partial batch is returned.
func (c *Controller) FetchRandomNumbers(ctx context.Context, count int) ([]string, error) {
	responses := make([]string, 0, count)

	for i := range count {
		response, err := c.roundTrip(ctx, protocol.CommandGetRandom)
		if err != nil {
			c.log.Error("Fetch aborted", "index", i, "error", err)

			return nil, &errors.CommunicationError{Op: "fetch", Err: err}
		}

		responses = append(responses, response)
	}

	c.log.Debug("Fetched random numbers", "count", len(responses))

	return responses, nil
}

// ProcessResponses parses every line as a base-10 integer, preserving order.
//
// Parsing is all or nothing: the first bad line yields an
// InvalidResponseError naming it and no values.
func (c *Controller) ProcessResponses(responses []string) ([]int, error) {
	numbers := make([]int, 0, len(responses))

	for _, response := range responses {
		n, err := protocol.ParseInt(response)
		if err != nil {
			c.log.Error("Invalid response", "response", response)

			return nil, &errors.InvalidResponseError{Response: response, Err: err}
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

// Run performs the whole exchange and returns the values sorted ascending.
//
// Shutdown is sent after the batch is fetched and before parsing; no reply
// is awaited and the generator's exit is not verified here (see Close).
func (c *Controller) Run(ctx context.Context) ([]int, error) {
	c.log.Info("Starting run")

	if err := c.CheckChildProcess(ctx); err != nil {
		return nil, err
	}

	responses, err := c.FetchRandomNumbers(ctx, c.options.EffectiveBatchSize())
	if err != nil {
		return nil, err
	}

	if err := c.transport.WriteLine(ctx, protocol.CommandShutdown.String()); err != nil {
		return nil, &errors.CommunicationError{Op: "shutdown", Err: err}
	}

	numbers, err := c.ProcessResponses(responses)
	if err != nil {
		return nil, err
	}

	slices.Sort(numbers)

	c.log.Info("Run complete", "count", len(numbers))

	return numbers, nil
}

// Close releases the generator. It's safe to call Close multiple times.
func (c *Controller) Close() error {
	return c.transport.Close()
}

// roundTrip writes one command and reads exactly one response line.
func (c *Controller) roundTrip(ctx context.Context, cmd protocol.Command) (string, error) {
	if err := c.transport.WriteLine(ctx, cmd.String()); err != nil {
		return "", err
	}

	line, err := c.transport.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	return protocol.TrimLine(line), nil
}
