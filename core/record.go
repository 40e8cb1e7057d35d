package core

import (
	"strings"
	"time"
)

// Record is a validated log event. All defaults are resolved at
// construction and a Record is never modified afterwards.
type Record struct {
	time      time.Time
	level     Level
	tag       string
	message   string
	exception string
	hasEx     bool
	prefix    string
	postfix   string
}

// Time returns the moment the record was extracted
func (r *Record) Time() time.Time { return r.time }

// Level returns the resolved severity
func (r *Record) Level() Level { return r.level }

// Tag returns the source tag
func (r *Record) Tag() string { return r.tag }

// Message returns the message text, possibly empty
func (r *Record) Message() string { return r.message }

// Prefix returns the decoration written directly before the message
func (r *Record) Prefix() string { return r.prefix }

// Postfix returns the decoration written directly after the message
func (r *Record) Postfix() string { return r.postfix }

// Exception returns the raw exception dump and whether the payload carried
// one. A present but blank dump is reported as present.
func (r *Record) Exception() (string, bool) { return r.exception, r.hasEx }

// HasExceptionDump reports whether the exception dump should be rendered:
// it must be present and non-blank after trimming.
func (r *Record) HasExceptionDump() bool {
	return r.hasEx && strings.TrimSpace(r.exception) != ""
}

// Empty reports whether the record has no message. Formatters suppress
// output for empty records.
func (r *Record) Empty() bool { return r.message == "" }

// Exception is an exception dump carried as an error value, for host
// facilities that attach errors to log calls natively.
type Exception string

// Error implements error
func (e Exception) Error() string { return string(e) }

// WithoutException returns a copy of the record with no exception dump.
// The receiver is left untouched.
func (r Record) WithoutException() Record {
	r.exception = ""
	r.hasEx = false
	return r
}
