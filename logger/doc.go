// Package logger is the emitting side of the boundary. Most programs only
// need this package.
//
// A Logger turns calls like E("conn failed", err) into a "log" call with a
// payload of level code, tag, message, exception dump and decoration, and
// hands it to a Caller. A dispatch.Dispatcher is the usual Caller; any
// transport that forwards (method, args) pairs works as well.
//
// The package initializes a default Logger that dispatches to a console
// sink on stdout. The package-level functions delegate to it:
//
//	logger.I("ready", nil)
//	logger.Tagged("net").E("conn failed", err)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithCaller(dispatch.New(sink)).
//	    WithTag("net").
//	    WithPrefix("[").
//	    WithPostfix("]").
//	    Build()
//
// Loggers are immutable. WithTag and WithDecoration return new Loggers
// sharing the same Caller.
//
// F and WTF log at fatal severity but never exit the process.
package logger
