// Package mocks provides testify mocks of the handler interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/magillus/flutter-fimber/core"
)

// Handler is a mock handler.Handler. It does not implement
// CanRecycleEntry, so recorded entries stay valid after Handle returns.
type Handler struct {
	mock.Mock
}

// Handle provides a mock function with given fields: entry
func (m *Handler) Handle(entry *core.Entry) error {
	ret := m.Called(entry)
	return ret.Error(0)
}

// Close provides a mock function with no fields
func (m *Handler) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

// Entries returns the entries passed to Handle, in call order
func (m *Handler) Entries() []*core.Entry {
	var entries []*core.Entry
	for _, c := range m.Calls {
		if c.Method != "Handle" {
			continue
		}
		entries = append(entries, c.Arguments.Get(0).(*core.Entry))
	}
	return entries
}

// AttachingHandler is a mock handler that also implements
// handler.ExceptionAttacher.
type AttachingHandler struct {
	Handler
}

// AttachesException provides a mock function with no fields
func (m *AttachingHandler) AttachesException() bool {
	ret := m.Called()
	return ret.Bool(0)
}

// NewHandler creates a new Handler mock and registers cleanup assertions.
func NewHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *Handler {
	m := &Handler{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NewAttachingHandler creates a new AttachingHandler mock and registers
// cleanup assertions.
func NewAttachingHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *AttachingHandler {
	m := &AttachingHandler{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
