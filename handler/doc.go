// Package handler defines the native sink interface used by the dispatcher.
//
// A Handler receives one core.Entry per accepted log call. The entry's
// Message is already formatted; the handler only maps the portable level
// to the host severity and performs one native call. Handlers that can
// carry an error value natively implement ExceptionAttacher, in which case
// the exception dump arrives in Entry.Exception instead of the message.
//
// Sinks live in subpackages:
//
//   - consolehandler writes the formatted text to an io.Writer.
//   - zaphandler, zerologhandler and logrushandler log through the
//     respective structured loggers.
//   - sloghandler logs through log/slog.
//
// MultiHandler fans one entry out to several sinks. Handlers count their
// calls in a Stats value that can be read as a Snapshot.
package handler
