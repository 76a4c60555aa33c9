// Command randctl spawns randgen, collects a batch of random integers and
// prints them in ascending order followed by their median and mean.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	randctl "github.com/wagiedev/randctl-go"
	"github.com/wagiedev/randctl-go/internal/logging"
	"github.com/wagiedev/randctl-go/internal/report"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "randctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, opts ...randctl.Option) error {
	log := logging.NewLogger()

	values, err := randctl.Run(ctx, append([]randctl.Option{randctl.WithLogger(log)}, opts...)...)
	if err != nil {
		log.Error("Run failed", "error", err)

		return fmt.Errorf("controller run failed: %w", err)
	}

	if err := report.WriteValues(stdout, values); err != nil {
		return err
	}

	return report.WriteSummary(stdout, values)
}
