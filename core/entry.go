package core

import (
	"sync"
	"time"
)

// Entry holds the arguments of a single native sink call
type Entry struct {
	Time  time.Time
	Level Level
	Tag   string
	// Message is the fully formatted text
	Message string
	// Exception is set only for sinks that attach exceptions natively;
	// otherwise the dump is already part of Message.
	Exception error
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a cleared Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Tag = ""
	e.Exception = nil
	entryPool.Put(e)
}
