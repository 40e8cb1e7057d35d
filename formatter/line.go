package formatter

import (
	"bytes"

	"github.com/magillus/flutter-fimber/core"
)

// LineFormatter renders the bare message line used by categorized native
// loggers, which print tag and severity themselves:
//
//	<prefix><message><postfix>
//	<exception dump>
//
// The second line is written only when the dump is present and not blank.
type LineFormatter struct{}

// NewLineFormatter creates a new line formatter
func NewLineFormatter() *LineFormatter {
	return &LineFormatter{}
}

// Format formats a record as a message line
func (f *LineFormatter) Format(r *core.Record) string {
	return formatWith(f, r)
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter)
func (f *LineFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) bool {
	if r.Empty() {
		return false
	}
	writeMessage(buf, r, true)
	writeException(buf, r)
	return true
}
