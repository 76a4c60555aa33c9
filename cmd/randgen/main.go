// Command randgen answers controller commands on stdin/stdout until it is
// told to shut down.
package main

import (
	"fmt"
	"os"

	"github.com/wagiedev/randctl-go/internal/generator"
	"github.com/wagiedev/randctl-go/internal/logging"
)

func main() {
	log := logging.NewLogger()

	gen := generator.New(log, generator.NewRandomSource())
	if err := gen.Serve(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "randgen: %v\n", err)
		os.Exit(1)
	}
}
