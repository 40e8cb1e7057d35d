package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// ConsoleHandler prints each entry's message as one write, terminated by a
// newline. It is the sink for hosts whose only facility is a plain console,
// so it should be paired with a formatter that renders tag and level.
type ConsoleHandler struct {
	writer io.Writer
	stats  *handler.Stats
	mu     sync.Mutex // protects buf and serializes writes
	buf    bytes.Buffer
	closed chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
		closed: make(chan struct{}),
	}
	h.buf.Grow(256)
	return h
}

// Handle writes the entry's message followed by a newline
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return handler.ErrClosed
	default:
	}

	h.mu.Lock()
	h.buf.Reset()
	h.buf.WriteString(entry.Message)
	h.buf.WriteByte('\n')
	_, err := h.writer.Write(h.buf.Bytes())
	h.mu.Unlock()

	h.stats.Record(entry.Level, err)
	return err
}

// CanRecycleEntry returns true because entries are written immediately.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. It does not close the underlying writer.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
