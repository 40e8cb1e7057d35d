package formatter

import (
	"bytes"
	"time"
	"unicode/utf8"

	"github.com/magillus/flutter-fimber/core"
)

// JSONFormatter renders a record as a single JSON object, for console
// sinks whose output is collected by machines. The exception dump is kept
// in its own "ex" key instead of a trailing line.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(r *core.Record) string {
	return formatWith(f, r)
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) bool {
	if r.Empty() {
		return false
	}

	buf.WriteString(`{"time":"`)
	buf.Write(r.Time().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","level":"`)
	buf.WriteString(r.Level().Code())

	buf.WriteString(`","tag":"`)
	appendJSONString(buf, r.Tag())

	buf.WriteString(`","message":"`)
	if f.Decorate {
		appendJSONString(buf, r.Prefix())
	}
	appendJSONString(buf, r.Message())
	if f.Decorate {
		appendJSONString(buf, r.Postfix())
	}
	buf.WriteByte('"')

	if r.HasExceptionDump() {
		ex, _ := r.Exception()
		buf.WriteString(`,"ex":"`)
		appendJSONString(buf, ex)
		buf.WriteByte('"')
	}

	buf.WriteByte('}')
	return true
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				// Invalid UTF-8 is coerced to U+FFFD
				if start < i {
					buf.WriteString(s[start:i])
				}
				buf.WriteString(`\ufffd`)
				start = i + size
			}
			i += size
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		i++
		start = i
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
