package handler

import (
	"github.com/magillus/flutter-fimber/core"
)

// Handler is a native sink: it hands one formatted entry to the host
// logging facility.
type Handler interface {
	// Handle performs exactly one native log call for the entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// ExceptionAttacher is an optional interface for handlers whose host
// facility attaches errors to log calls natively. When AttachesException
// reports true the dispatcher leaves the dump out of Entry.Message and
// passes it as Entry.Exception instead.
type ExceptionAttacher interface {
	AttachesException() bool
}

// StatsProvider is implemented by handlers that count their calls
type StatsProvider interface {
	Stats() Snapshot
}

// AttachesException reports whether h attaches exceptions natively
func AttachesException(h Handler) bool {
	ea, ok := h.(ExceptionAttacher)
	return ok && ea.AttachesException()
}

// CanRecycleEntry reports whether the caller may return the entry to the
// pool once h.Handle has returned.
func CanRecycleEntry(h Handler) bool {
	rc, ok := h.(interface{ CanRecycleEntry() bool })
	return ok && rc.CanRecycleEntry()
}

// LevelTable maps every portable level to a host specific value, usually
// a native severity or a log function. Tables are filled once when a
// handler is built so that no per-call branching on the level is needed.
type LevelTable[T any] [core.NumLevels]T

// Lookup returns the value for level. Out of range levels resolve to the
// VerboseLevel slot.
func (t *LevelTable[T]) Lookup(level core.Level) T {
	if level < core.VerboseLevel || int(level) >= core.NumLevels {
		return t[core.VerboseLevel]
	}
	return t[level]
}
