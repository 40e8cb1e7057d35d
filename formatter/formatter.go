package formatter

import (
	"bytes"
	"sync"

	"github.com/magillus/flutter-fimber/core"
)

// Formatter renders a record into the text handed to a native sink.
// An empty result means the record is suppressed and must not be logged.
type Formatter interface {
	// Format renders the record. It is pure: the same record always
	// yields the same text.
	Format(r *core.Record) string
}

// BufferFormatter is an optional interface that formatters can implement
// to render into a caller-provided buffer, avoiding the internal buffer
// pool round trip.
type BufferFormatter interface {
	// FormatRecord renders the record into buf and reports whether
	// anything was written. It returns false for suppressed records.
	FormatRecord(r *core.Record, buf *bytes.Buffer) bool
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (ConsoleFormatter default:
	// DefaultTimestampFormat, JSONFormatter default: RFC3339Nano)
	TimestampFormat string
	// Decorate wraps the message in the record's prefix and postfix.
	// LineFormatter always decorates.
	Decorate bool
}

// DefaultTimestampFormat is the console timestamp layout
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWith runs a BufferFormatter through a pooled buffer
func formatWith(f BufferFormatter, r *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	if !f.FormatRecord(r, buf) {
		return ""
	}
	return buf.String()
}

// writeMessage writes the message, decorated when asked to
func writeMessage(buf *bytes.Buffer, r *core.Record, decorate bool) {
	if decorate {
		buf.WriteString(r.Prefix())
	}
	buf.WriteString(r.Message())
	if decorate {
		buf.WriteString(r.Postfix())
	}
}

// writeException appends the exception dump as a trailing line when it is
// present and not blank.
func writeException(buf *bytes.Buffer, r *core.Record) {
	if !r.HasExceptionDump() {
		return
	}
	ex, _ := r.Exception()
	buf.WriteByte('\n')
	buf.WriteString(ex)
}
