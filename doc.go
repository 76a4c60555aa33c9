// Package randctl drives a random number generator subprocess over a
// line-oriented text protocol.
//
// A Controller spawns the randgen binary, checks it answers a health probe,
// requests a batch of random integers one at a time, tells it to shut down
// and returns the values sorted ascending.
//
// # Basic Usage
//
// For a single run with automatic cleanup, use Run:
//
//	ctx := context.Background()
//	values, err := randctl.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, v := range values {
//	    fmt.Println(v)
//	}
//
// # Step by Step
//
// New launches the generator; each protocol step is also available on its
// own:
//
//	ctrl, err := randctl.New(ctx, randctl.WithGeneratorPath("/opt/bin/randgen"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	if err := ctrl.CheckChildProcess(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	lines, err := ctrl.FetchRandomNumbers(ctx, 10)
//
// # Logging
//
// Logging is silent by default. For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	values, err := randctl.Run(ctx, randctl.WithLogger(logger))
//
// # Error Handling
//
// Every failure implements ControllerError; the concrete types tell which
// step failed:
//
//	values, err := randctl.Run(ctx)
//	if err != nil {
//	    if resp, ok := errors.AsType[*randctl.InvalidResponseError](err); ok {
//	        log.Fatalf("generator sent %q", resp.Response)
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// The randgen binary must sit next to the running executable, be on PATH,
// be named by RANDCTL_GENERATOR_PATH, or be passed with WithGeneratorPath.
package randctl
