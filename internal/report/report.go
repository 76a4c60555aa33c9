// Package report writes a run's values and summary to the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/wagiedev/randctl-go/internal/stats"
)

// WriteValues writes each value on its own line.
func WriteValues(w io.Writer, values []int) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("write value: %w", err)
		}
	}

	return nil
}

// WriteSummary writes the "Median:" and "Average:" lines.
// Nothing is written for an empty result.
func WriteSummary(w io.Writer, values []int) error {
	if len(values) == 0 {
		return nil
	}

	median, err := stats.Median(values)
	if err != nil {
		return err
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Median: %s\nAverage: %s\n", median, mean); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
