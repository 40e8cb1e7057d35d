package formatter

import (
	"bytes"

	"github.com/magillus/flutter-fimber/core"
)

// ConsoleFormatter renders the richer line used when the sink is a plain
// console that knows nothing about tags or severities:
//
//	<timestamp> <tag>/<level code>: <message>
//	<exception dump>
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &ConsoleFormatter{Config: cfg}
}

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(r *core.Record) string {
	return formatWith(f, r)
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter)
func (f *ConsoleFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) bool {
	if r.Empty() {
		return false
	}

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(r.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteByte(' ')
	buf.WriteString(r.Tag())
	buf.WriteByte('/')
	buf.WriteString(r.Level().Code())
	buf.WriteString(": ")

	writeMessage(buf, r, f.Decorate)
	writeException(buf, r)
	return true
}
