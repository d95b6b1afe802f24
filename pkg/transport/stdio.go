package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

// Ensure StdioTransport implements Transport at compile time.
var _ Transport = (*StdioTransport)(nil)

const maxStdioMessage = 4 << 20

// StdioTransport implements MCP over newline-delimited JSON-RPC on a reader
// and writer pair, normally stdin and stdout. Messages are handled one at a
// time in arrival order.
type StdioTransport struct {
	*Router
	in  io.Reader
	out io.Writer
	mu  sync.Mutex
}

// NewStdioTransport creates a transport reading requests from in and writing
// responses to out
func NewStdioTransport(in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{
		Router: NewRouter(),
		in:     in,
		out:    out,
	}
}

// Serve reads messages until the input is exhausted or ctx is cancelled.
// Cancellation is observed even while waiting for input.
func (s *StdioTransport) Serve(ctx context.Context) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go s.read(lines, readErr, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line := <-lines:
			if err := s.handle(ctx, line); err != nil {
				return err
			}
		}
	}
}

// read scans lines from the input until EOF or until done is closed. A read
// blocked on the input is left behind when Serve returns.
func (s *StdioTransport) read(lines chan<- []byte, readErr chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStdioMessage)

	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		select {
		case lines <- line:
		case <-done:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		readErr <- fmt.Errorf("read stdio: %w", err)
		return
	}
	readErr <- nil
}

func (s *StdioTransport) handle(ctx context.Context, line []byte) error {
	if len(line) == 0 {
		return nil
	}

	var msg types.MCPMessage
	if err := sonic.ConfigStd.Unmarshal(line, &msg); err != nil {
		log.WithError(err).Warn("[STDIO] failed to parse message")
		return s.write(&types.MCPMessage{
			Jsonrpc: "2.0",
			Error:   &types.MCPError{Code: CodeParseError, Message: "Parse error"},
		})
	}

	// A message without an id is a notification and gets no response.
	if len(msg.ID) == 0 {
		if handler, ok := s.handler(msg.Method); ok {
			if _, err := handler(ctx, msg.Params); err != nil {
				log.WithError(err).WithField("method", msg.Method).Warn("[STDIO] notification failed")
			}
		}
		return nil
	}

	return s.write(s.Process(ctx, &msg))
}

func (s *StdioTransport) write(msg *types.MCPMessage) error {
	payload, err := sonic.ConfigStd.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// NotifyToolsChanged writes a notifications/tools/list_changed message
func (s *StdioTransport) NotifyToolsChanged() {
	err := s.write(&types.MCPMessage{
		Jsonrpc: "2.0",
		Method:  "notifications/tools/list_changed",
	})
	if err != nil {
		log.WithError(err).Warn("[STDIO] failed to send tools changed notification")
	}
}
