package logger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/dispatch"
	"github.com/magillus/flutter-fimber/handler/zaphandler"
)

type mockCaller struct {
	mock.Mock
}

func (m *mockCaller) Handle(method string, args core.Payload) (any, error) {
	ret := m.Called(method, args)
	return ret.Get(0), ret.Error(1)
}

func TestLogger_Payload(t *testing.T) {
	c := &mockCaller{}
	c.On("Handle", dispatch.MethodLog, core.Payload{
		"level":   "E",
		"tag":     "net",
		"message": "conn failed",
		"ex":      "Timeout",
		"preFix":  "[",
		"postFix": "]",
	}).Return(0, nil).Once()

	log := NewBuilder().
		WithCaller(c).
		WithTag("net").
		WithPrefix("[").
		WithPostfix("]").
		Build()

	log.E("conn failed", errors.New("Timeout"))
	c.AssertExpectations(t)
}

func TestLogger_OmitsEmptyFields(t *testing.T) {
	c := &mockCaller{}
	c.On("Handle", dispatch.MethodLog, core.Payload{
		"level":   "I",
		"message": "hello",
	}).Return(0, nil).Once()

	NewBuilder().WithCaller(c).Build().I("hello", nil)
	c.AssertExpectations(t)
}

func TestLogger_LevelCodes(t *testing.T) {
	tests := []struct {
		name string
		emit func(l *Logger)
		code string
	}{
		{"V", func(l *Logger) { l.V("m", nil) }, "V"},
		{"D", func(l *Logger) { l.D("m", nil) }, "D"},
		{"I", func(l *Logger) { l.I("m", nil) }, "I"},
		{"W", func(l *Logger) { l.W("m", nil) }, "W"},
		{"E", func(l *Logger) { l.E("m", nil) }, "E"},
		{"F", func(l *Logger) { l.F("m", nil) }, "F"},
		{"WTF", func(l *Logger) { l.WTF("m", nil) }, "WTF"},
		{"Verbosef", func(l *Logger) { l.Verbosef("%s", "m") }, "V"},
		{"Debugf", func(l *Logger) { l.Debugf("%s", "m") }, "D"},
		{"Infof", func(l *Logger) { l.Infof("%s", "m") }, "I"},
		{"Warnf", func(l *Logger) { l.Warnf("%s", "m") }, "W"},
		{"Errorf", func(l *Logger) { l.Errorf("%s", "m") }, "E"},
		{"Fatalf", func(l *Logger) { l.Fatalf("%s", "m") }, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &mockCaller{}
			c.On("Handle", dispatch.MethodLog, core.Payload{"level": tt.code, "message": "m"}).
				Return(0, nil).Once()

			tt.emit(NewBuilder().WithCaller(c).Build())
			c.AssertExpectations(t)
		})
	}
}

func TestLogger_WithTagIsImmutable(t *testing.T) {
	base := NewBuilder().WithTag("app").Build()
	child := base.WithTag("net")
	decorated := child.WithDecoration("<", ">")

	assert.Equal(t, "app", base.Tag())
	assert.Equal(t, "net", child.Tag())
	assert.NotContains(t, child.Payload("I", "m", nil), core.KeyPrefix)
	assert.Equal(t, "<", decorated.Payload("I", "m", nil)[core.KeyPrefix])
	assert.Equal(t, ">", decorated.Payload("I", "m", nil)[core.KeyPostfix])
}

func TestLogger_ErrorHandler(t *testing.T) {
	callErr := errors.New("boom")
	c := &mockCaller{}
	c.On("Handle", mock.Anything, mock.Anything).Return(nil, callErr)

	var got []error
	log := NewBuilder().
		WithCaller(c).
		WithErrorHandler(func(err error) { got = append(got, err) }).
		Build()

	log.W("first", nil)
	assert.Equal(t, []error{callErr}, got)
	assert.Same(t, callErr, log.Log("W", "second", nil))
}

func TestLogger_NoCaller(t *testing.T) {
	log := NewBuilder().Build()

	assert.NotPanics(t, func() { log.E("nowhere", nil) })
	assert.ErrorIs(t, log.Log("E", "nowhere", nil), dispatch.ErrDetached)
}

func TestLogger_WrappedErrorDump(t *testing.T) {
	log := NewBuilder().Build()
	err := fmt.Errorf("dial: %w", errors.New("refused"))

	assert.Equal(t, "dial: refused", log.Payload("E", "m", err)[core.KeyException])
}

func TestLogger_EndToEndZap(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	h := zaphandler.NewZapHandler(zaphandler.ZapConfig{Logger: zap.New(obsCore)})

	log := NewBuilder().
		WithCaller(dispatch.New(h)).
		WithTag("net").
		WithPrefix("[").
		WithPostfix("]").
		Build()

	log.E("conn failed", errors.New("Timeout"))

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, e.Level)
	assert.Equal(t, "[conn failed]", e.Message)
	assert.Equal(t, "net", e.ContextMap()["tag"])
	assert.Equal(t, "Timeout", e.ContextMap()["ex"])
}

func TestDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	c := &mockCaller{}
	c.On("Handle", dispatch.MethodLog, core.Payload{"level": "I", "tag": "db", "message": "ready"}).
		Return(0, nil).Once()
	c.On("Handle", dispatch.MethodLog, core.Payload{"level": "E", "message": "query failed 3"}).
		Return(0, nil).Once()

	SetDefault(NewBuilder().WithCaller(c).Build())

	Tagged("db").I("ready", nil)
	Errorf("query failed %d", 3)
	c.AssertExpectations(t)
}
