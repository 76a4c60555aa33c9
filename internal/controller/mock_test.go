package controller

import (
	"bufio"
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/randctl-go/internal/config"
	"github.com/wagiedev/randctl-go/internal/generator"
	"github.com/wagiedev/randctl-go/internal/protocol"
)

// mockTransport implements config.Transport for testing.
// It queues one scripted response for every command that has one.
type mockTransport struct {
	mu       sync.Mutex
	started  bool
	closed   bool
	exited   bool
	exitCode int
	startErr error
	writeErr error
	readErr  error
	written  []string
	pending  []string

	// respond returns the reply to a command. Nil answers Hi with Hi and
	// GetRandom with 42.
	respond func(line string) string
}

var _ config.Transport = (*mockTransport)(nil)

func newMockTransport() *mockTransport {
	return &mockTransport{}
}

func (m *mockTransport) Start(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.startErr != nil {
		return m.startErr
	}

	m.started = true

	return nil
}

func (m *mockTransport) WriteLine(_ context.Context, line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	m.written = append(m.written, line)

	cmd := protocol.ParseCommand(line)
	if !cmd.HasResponse() {
		return nil
	}

	respond := m.respond
	if respond == nil {
		respond = defaultResponse
	}

	m.pending = append(m.pending, respond(line))

	return nil
}

func (m *mockTransport) ReadLine(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return "", m.readErr
	}

	if len(m.pending) == 0 {
		return "", io.EOF
	}

	line := m.pending[0]
	m.pending = m.pending[1:]

	return line, nil
}

func (m *mockTransport) Exited() (bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.exited, m.exitCode
}

func (m *mockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}

func (m *mockTransport) lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.written...)
}

func defaultResponse(line string) string {
	switch protocol.ParseCommand(line) {
	case protocol.CommandHi:
		return protocol.ResponseHi
	case protocol.CommandGetRandom:
		return "42"
	default:
		return protocol.ResponseUnknown
	}
}

// pipeTransport connects the controller to an in-process generator over
// io.Pipe, exercising the real protocol loop without spawning a process.
type pipeTransport struct {
	gen     *generator.Generator
	inW     *io.PipeWriter
	outR    *io.PipeReader
	reader  *bufio.Reader
	group   *errgroup.Group
	done    chan struct{}
	serveMu sync.Mutex
	served  error
}

var _ config.Transport = (*pipeTransport)(nil)

func newPipeTransport(src generator.Source) *pipeTransport {
	return &pipeTransport{
		gen:  generator.New(nil, src),
		done: make(chan struct{}),
	}
}

func (p *pipeTransport) Start(ctx context.Context) error {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	p.inW = inW
	p.outR = outR
	p.reader = bufio.NewReader(outR)
	p.group, _ = errgroup.WithContext(ctx)

	p.group.Go(func() error {
		defer close(p.done)

		err := p.gen.Serve(inR, outW)
		// Unblock any reader the way a real process exit closes stdout.
		_ = outW.Close()
		_ = inR.Close()

		p.serveMu.Lock()
		p.served = err
		p.serveMu.Unlock()

		return err
	})

	return nil
}

func (p *pipeTransport) WriteLine(_ context.Context, line string) error {
	_, err := io.WriteString(p.inW, line+"\n")

	return err
}

func (p *pipeTransport) ReadLine(_ context.Context) (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return line[:len(line)-1], nil
}

func (p *pipeTransport) Exited() (bool, int) {
	select {
	case <-p.done:
		p.serveMu.Lock()
		defer p.serveMu.Unlock()

		if p.served != nil {
			return true, 1
		}

		return true, 0
	default:
		return false, 0
	}
}

func (p *pipeTransport) Close() error {
	_ = p.inW.Close()

	err := p.group.Wait()
	_ = p.outR.Close()

	return err
}
