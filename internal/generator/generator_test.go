package generator

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// serve feeds lines to a generator and returns what it wrote, split by line.
func serve(t *testing.T, src Source, lines ...string) ([]string, error) {
	t.Helper()

	var out strings.Builder

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	err := New(nil, src).Serve(in, &out)

	if out.Len() == 0 {
		return nil, err
	}

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), err
}

func TestServe_Hi(t *testing.T) {
	out, err := serve(t, FixedSource(42), "Hi", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Hi"}, out)
}

func TestServe_GetRandom(t *testing.T) {
	out, err := serve(t, FixedSource(42), "GetRandom", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"42"}, out)
}

func TestServe_ShutdownOnly(t *testing.T) {
	out, err := serve(t, FixedSource(42), "Shutdown")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestServe_UnknownCommand(t *testing.T) {
	out, err := serve(t, FixedSource(42), "InvalidCommand", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Unknown command"}, out)
}

func TestServe_MultipleCommandsSequence(t *testing.T) {
	out, err := serve(t, FixedSource(42), "Hi", "GetRandom", "Garbage", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Hi", "42", "Unknown command"}, out)
}

func TestServe_RepeatedCommandsAreIdempotent(t *testing.T) {
	out, err := serve(t, FixedSource(7), "Hi", "nope", "Hi", "nope", "Hi", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Hi", "Unknown command", "Hi", "Unknown command", "Hi"}, out)
}

func TestServe_CommandsAreCaseSensitive(t *testing.T) {
	out, err := serve(t, FixedSource(1), "hi", "getrandom", "shutdown", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Unknown command", "Unknown command", "Unknown command"}, out)
}

func TestServe_StopsReadingAfterShutdown(t *testing.T) {
	out, err := serve(t, FixedSource(1), "Shutdown", "Hi", "GetRandom")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestServe_EndOfInputBeforeShutdown(t *testing.T) {
	out, err := serve(t, FixedSource(1), "Hi")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, []string{"Hi"}, out)
}

func TestServe_LongLineIsUnknownCommand(t *testing.T) {
	out, err := serve(t, FixedSource(1), strings.Repeat("x", 70000), "Hi", "Shutdown")
	require.NoError(t, err)
	require.Equal(t, []string{"Unknown command", "Hi"}, out)
}

func TestServe_FinalLineWithoutNewline(t *testing.T) {
	var out strings.Builder

	err := New(nil, FixedSource(1)).Serve(strings.NewReader("Hi\nHi"), &out)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "Hi\nHi\n", out.String())
}

func TestServe_CarriageReturnIsStripped(t *testing.T) {
	var out strings.Builder

	err := New(nil, FixedSource(1)).Serve(strings.NewReader("Hi\r\nShutdown\r\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "Hi\n", out.String())
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestServe_ReadFailurePropagates(t *testing.T) {
	interrupted := errors.New("interrupted")

	err := New(nil, FixedSource(1)).Serve(failingReader{err: interrupted}, io.Discard)
	require.ErrorIs(t, err, interrupted)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestServe_WriteFailurePropagates(t *testing.T) {
	err := New(nil, FixedSource(1)).Serve(strings.NewReader("Hi\nShutdown\n"), failingWriter{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

// flushRecorder records each Write call so tests can check per-line flushing.
type flushRecorder struct{ writes []string }

func (f *flushRecorder) Write(p []byte) (int, error) {
	f.writes = append(f.writes, string(p))

	return len(p), nil
}

func TestServe_FlushesEveryResponse(t *testing.T) {
	rec := &flushRecorder{}

	err := New(nil, FixedSource(5)).Serve(strings.NewReader("Hi\nGetRandom\nShutdown\n"), rec)
	require.NoError(t, err)
	require.Equal(t, []string{"Hi\n", "5\n"}, rec.writes)
}

func TestNew_NilSourceUsesRandom(t *testing.T) {
	g := New(nil, nil)
	require.IsType(t, RandomSource{}, g.src)
}
