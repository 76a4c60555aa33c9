package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wagiedev/randctl-go/internal/protocol"
)

// Generator answers controller commands.
type Generator struct {
	log *slog.Logger
	src Source
}

// New creates a generator drawing values from src.
// A nil logger disables logging; a nil src uses RandomSource.
func New(log *slog.Logger, src Source) *Generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if src == nil {
		src = NewRandomSource()
	}

	return &Generator{
		log: log.With("component", "generator"),
		src: src,
	}
}

// Serve runs the read-dispatch-write loop until Shutdown is read.
//
// Every response is flushed before the next command is read. Lines have no
// length limit; a final line without a newline is still answered. Serve
// returns nil after Shutdown; if the input ends or fails first, the read
// error is returned (io.EOF for a closed stream) and no more output is
// written.
func (g *Generator) Serve(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	handled := 0

	for {
		line, err := r.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			g.log.Debug("Input ended before shutdown", "handled", handled, "error", err)

			return fmt.Errorf("read command: %w", err)
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		cmd := protocol.ParseCommand(line)

		var response string

		switch cmd {
		case protocol.CommandHi:
			response = protocol.ResponseHi
		case protocol.CommandGetRandom:
			response = protocol.FormatInt(g.src.Int())
		case protocol.CommandShutdown:
			g.log.Debug("Shutdown received", "handled", handled)

			return nil
		default:
			g.log.Debug("Unknown command", "line", line)

			response = protocol.ResponseUnknown
		}

		handled++

		if _, err := w.WriteString(response + "\n"); err != nil {
			return fmt.Errorf("write response: %w", err)
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush response: %w", err)
		}
	}
}
