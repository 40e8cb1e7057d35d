// Package consolehandler provides the plain console sink: each entry's
// message is written to an io.Writer (default: os.Stdout) followed by a
// newline, in a single Write call.
//
// A console has no notion of tags or severities, so the handler is
// normally paired with formatter.ConsoleFormatter, which renders them
// into the line. Writes are serialized by a mutex, so one handler may be
// shared by concurrent dispatchers.
package consolehandler
