package handler

import (
	"go.uber.org/multierr"

	"github.com/magillus/flutter-fimber/core"
)

// MultiHandler sends each entry to multiple handlers
type MultiHandler struct {
	handlers     []Handler
	attachesEx   bool // true when every child attaches exceptions natively
	recycleEntry bool // true when every child supports entry recycling
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		attachesEx:   len(handlers) > 0,
		recycleEntry: true,
	}
	for _, h := range handlers {
		if !AttachesException(h) {
			m.attachesEx = false
		}
		if !CanRecycleEntry(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle sends the entry to all handlers. Every child is called even if an
// earlier one fails; the errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(entry))
	}
	return err
}

// AttachesException reports true only when all children attach exceptions
// natively, since a single Message must serve every child.
func (h *MultiHandler) AttachesException() bool {
	return h.attachesEx
}

// CanRecycleEntry returns true if the caller can recycle the entry after Handle returns.
// This is safe when all child handlers process entries synchronously.
func (h *MultiHandler) CanRecycleEntry() bool {
	return h.recycleEntry
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
