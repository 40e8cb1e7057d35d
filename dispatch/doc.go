// Package dispatch routes boundary method calls to a native sink.
//
// A Dispatcher receives (method, args) pairs from the frontend. For "log"
// it extracts a core.Record from the payload, formats it and makes exactly
// one call on the attached handler.Handler. "getPlatformVersion" reports
// the host operating system. Every other method yields ErrNotImplemented.
//
// Records whose formatted text is empty are suppressed: the call succeeds
// and the sink is not touched.
//
//	d := dispatch.New(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}))
//	d.Handle(dispatch.MethodLog, core.Payload{"level": "I", "message": "hello"})
//
// The sink is owned by the caller. Detach hands it back without closing it.
package dispatch
