// Package sloghandler is a native sink backed by the standard library's
// log/slog. The tag and the exception travel as attributes.
//
// slog has no levels below Debug or above Error, so VERBOSE and FATAL are
// logged at LevelVerbose (Debug-4) and LevelFatal (Error+4). Use
// ReplaceLevelNames in slog.HandlerOptions to print them by name.
package sloghandler
