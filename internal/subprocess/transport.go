package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/wagiedev/randctl-go/internal/config"
	"github.com/wagiedev/randctl-go/internal/discovery"
	"github.com/wagiedev/randctl-go/internal/errors"
)

// Transport implements config.Transport by spawning a generator subprocess.
type Transport struct {
	log     *slog.Logger
	options *config.Options
	path    string
	cmd     *exec.Cmd
	stdin   *os.File // parent's write end of the child's stdin
	stdout  *os.File // parent's read end of the child's stdout
	writer  *bufio.Writer
	reader  *bufio.Reader

	// exited is closed by the wait goroutine once the child is reaped.
	exited   chan struct{}
	exitCode int

	mu     sync.Mutex // Protects closed
	closed bool
}

// Compile-time verification that Transport implements the Transport interface.
var _ config.Transport = (*Transport)(nil)

// NewTransport creates a new subprocess transport.
//
// Generator discovery is deferred to Start().
func NewTransport(log *slog.Logger, options *config.Options) *Transport {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if options == nil {
		options = &config.Options{}
	}

	return &Transport{
		log:     log.With("component", "subprocess_transport"),
		options: options,
	}
}

// Start discovers the generator binary and spawns it with no arguments.
//
// The child's stdin and stdout are OS pipes; its stderr is inherited unless
// Options.Stderr is set. Returns GeneratorNotFoundError if the binary cannot
// be located, or StartError if the process fails to start.
func (t *Transport) Start(ctx context.Context) error {
	t.log.Info("Starting generator subprocess")

	discoverer := discovery.NewDiscoverer(&discovery.Config{
		GeneratorPath: t.options.GeneratorPath,
		Logger:        t.log,
	})

	path, err := discoverer.Discover()
	if err != nil {
		return fmt.Errorf("discover generator: %w", err)
	}

	t.path = path

	// Wait must never close the ends we read from and write to, so the
	// pipes are created here instead of through StdinPipe/StdoutPipe.
	childIn, parentIn, err := os.Pipe()
	if err != nil {
		return &errors.StartError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	parentOut, childOut, err := os.Pipe()
	if err != nil {
		closeAll(childIn, parentIn)

		return &errors.StartError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	//nolint:gosec // G204: the generator path comes from discovery
	cmd := exec.CommandContext(ctx, path)
	cmd.Stdin = childIn
	cmd.Stdout = childOut

	cmd.Stderr = os.Stderr
	if t.options.Stderr != nil {
		cmd.Stderr = t.options.Stderr
	}

	if err := cmd.Start(); err != nil {
		t.log.Error("Failed to start generator process", "error", err)
		closeAll(childIn, parentIn, parentOut, childOut)

		return &errors.StartError{Err: fmt.Errorf("start process: %w", err)}
	}

	// The child holds its own copies now.
	closeAll(childIn, childOut)

	t.cmd = cmd
	t.stdin = parentIn
	t.stdout = parentOut
	t.writer = bufio.NewWriter(parentIn)
	t.reader = bufio.NewReader(parentOut)
	t.exited = make(chan struct{})

	go t.wait()

	t.log.Info("Generator subprocess started", "pid", cmd.Process.Pid, "path", path)

	return nil
}

// wait reaps the child and publishes its exit status.
func (t *Transport) wait() {
	err := t.cmd.Wait()

	t.exitCode = -1
	if t.cmd.ProcessState != nil {
		t.exitCode = t.cmd.ProcessState.ExitCode()
	}

	if err != nil {
		t.log.Debug("Generator process exited with error", "exit_code", t.exitCode, "error", err)
	} else {
		t.log.Debug("Generator process exited", "exit_code", t.exitCode)
	}

	close(t.exited)
}

// WriteLine writes line followed by a newline and flushes it.
func (t *Transport) WriteLine(ctx context.Context, line string) error {
	if err := t.ready(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	t.log.Debug("Sending line to generator", "line", line)

	if _, err := t.writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write to stdin: %w", err)
	}

	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("flush stdin: %w", err)
	}

	return nil
}

// ReadLine blocks until the generator writes one line.
//
// A final line without a terminator is returned as-is; once the stream is
// exhausted the error wraps io.EOF.
func (t *Transport) ReadLine(ctx context.Context) (string, error) {
	if err := t.ready(); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && (line == "" || !stderrors.Is(err, io.EOF)) {
		return "", fmt.Errorf("read from stdout: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	t.log.Debug("Received line from generator", "line", line)

	return line, nil
}

// Exited reports whether the child has been reaped, without blocking.
func (t *Transport) Exited() (bool, int) {
	if t.exited == nil {
		return false, 0
	}

	select {
	case <-t.exited:
		return true, t.exitCode
	default:
		return false, 0
	}
}

// Pid returns the child's process ID, or 0 before Start.
func (t *Transport) Pid() int {
	if t.cmd == nil || t.cmd.Process == nil {
		return 0
	}

	return t.cmd.Process.Pid
}

// Close ends the child's input, gives it Options.ShutdownGrace to exit and
// kills it if it is still running. It's safe to call Close multiple times
// or on a transport that never started.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.cmd == nil {
		t.closed = true

		return nil
	}

	t.closed = true

	// EOF on stdin makes a generator that never saw Shutdown stop reading.
	_ = t.stdin.Close()

	var killErr error

	select {
	case <-t.exited:
	case <-time.After(t.options.EffectiveShutdownGrace()):
		t.log.Warn("Generator did not exit in time, killing", "pid", t.cmd.Process.Pid)

		err := t.cmd.Process.Kill()
		if err != nil && !stderrors.Is(err, os.ErrProcessDone) {
			killErr = fmt.Errorf("kill generator process (pid %d): %w", t.cmd.Process.Pid, err)
		} else {
			<-t.exited
		}
	}

	_ = t.stdout.Close()

	return killErr
}

func (t *Transport) ready() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return errors.ErrTransportClosed
	}

	if t.cmd == nil {
		return errors.ErrTransportNotStarted
	}

	return nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
