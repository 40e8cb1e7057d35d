package dispatch

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/formatter"
	"github.com/magillus/flutter-fimber/handler/consolehandler"
	"github.com/magillus/flutter-fimber/handler/mocks"
)

func TestHandle_DecoratedErrorWithException(t *testing.T) {
	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(nil).Once()

	d := New(h)
	res, err := d.Handle(MethodLog, core.Payload{
		"level":   "E",
		"tag":     "net",
		"message": "conn failed",
		"ex":      "Timeout",
		"preFix":  "[",
		"postFix": "]",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res)

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, core.ErrorLevel, entries[0].Level)
	assert.Equal(t, "net", entries[0].Tag)
	assert.Equal(t, "[conn failed]\nTimeout", entries[0].Message)
	assert.Nil(t, entries[0].Exception)
}

func TestHandle_Defaults(t *testing.T) {
	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(nil).Once()

	d := New(h)
	_, err := d.Handle(MethodLog, core.Payload{"message": "hello"})
	require.NoError(t, err)

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, core.DefaultTag, entries[0].Tag)
	assert.Equal(t, core.VerboseLevel, entries[0].Level)
	assert.Equal(t, "hello", entries[0].Message)
}

func TestHandle_UnknownMethod(t *testing.T) {
	h := mocks.NewHandler(t)

	d := New(h)
	res, err := d.Handle("frobnicate", core.Payload{"message": "x"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotImplemented)
	h.AssertNotCalled(t, "Handle", mock.Anything)
	assert.Equal(t, uint64(1), d.Stats().Unsupported)
}

func TestHandle_UnknownLevelCode(t *testing.T) {
	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(nil).Once()

	d := New(h)
	_, err := d.Handle(MethodLog, core.Payload{"level": "ZZZ", "message": "x"})
	require.NoError(t, err)

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, core.VerboseLevel, entries[0].Level)
}

func TestHandle_LevelCodes(t *testing.T) {
	tests := []struct {
		code string
		want core.Level
	}{
		{"V", core.VerboseLevel},
		{"D", core.DebugLevel},
		{"I", core.InfoLevel},
		{"W", core.WarnLevel},
		{"E", core.ErrorLevel},
		{"F", core.FatalLevel},
		{"WTF", core.FatalLevel},
		{"i", core.VerboseLevel},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			h := mocks.NewHandler(t)
			h.On("Handle", mock.Anything).Return(nil).Once()

			d := New(h)
			_, err := d.Handle(MethodLog, core.Payload{"level": tt.code, "message": "m"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Entries()[0].Level)
		})
	}
}

func TestHandle_EmptyMessageSuppressed(t *testing.T) {
	payloads := []core.Payload{
		nil,
		{},
		{"message": ""},
		{"message": 42, "ex": "boom"},
		{"message": "", "preFix": "[", "postFix": "]"},
	}

	for _, p := range payloads {
		h := mocks.NewHandler(t)
		d := New(h)

		res, err := d.Handle(MethodLog, p)
		require.NoError(t, err)
		assert.Equal(t, 0, res)
		h.AssertNotCalled(t, "Handle", mock.Anything)
		assert.Equal(t, uint64(1), d.Stats().Suppressed)
	}
}

func TestHandle_BlankExceptionIsAbsent(t *testing.T) {
	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(nil).Once()

	d := New(h)
	_, err := d.Handle(MethodLog, core.Payload{"message": "m", "ex": "  \n\t"})
	require.NoError(t, err)
	assert.Equal(t, "m", h.Entries()[0].Message)
}

func TestHandle_AttachingHandler(t *testing.T) {
	h := mocks.NewAttachingHandler(t)
	h.On("AttachesException").Return(true)
	h.On("Handle", mock.Anything).Return(nil).Twice()

	d := New(h)

	_, err := d.Handle(MethodLog, core.Payload{
		"level": "E", "tag": "net", "message": "conn failed",
		"ex": "Timeout", "preFix": "[", "postFix": "]",
	})
	require.NoError(t, err)

	_, err = d.Handle(MethodLog, core.Payload{"message": "no dump", "ex": " "})
	require.NoError(t, err)

	entries := h.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "[conn failed]", entries[0].Message)
	assert.Equal(t, core.Exception("Timeout"), entries[0].Exception)

	assert.Equal(t, "no dump", entries[1].Message)
	assert.Nil(t, entries[1].Exception)
}

func TestHandle_SinkErrorPropagates(t *testing.T) {
	sinkErr := errors.New("sink unavailable")

	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(sinkErr).Once()

	d := New(h)
	res, err := d.Handle(MethodLog, core.Payload{"message": "m"})

	assert.Nil(t, res)
	assert.Same(t, sinkErr, err)
	assert.Equal(t, uint64(1), d.Stats().Failed)
	assert.Equal(t, uint64(0), d.Stats().Dispatched)
}

func TestHandle_GetPlatformVersion(t *testing.T) {
	h := mocks.NewHandler(t)

	d := New(h, WithPlatformVersion(func() string { return "Test 1.0" }))
	res, err := d.Handle(MethodGetPlatformVersion, nil)

	require.NoError(t, err)
	assert.Equal(t, "Test 1.0", res)
	h.AssertNotCalled(t, "Handle", mock.Anything)
}

func TestPlatformVersion_Host(t *testing.T) {
	v := PlatformVersion()
	require.NotEmpty(t, v)
	assert.Equal(t, v, PlatformVersion())

	switch runtime.GOOS {
	case "linux":
		assert.True(t, strings.HasPrefix(v, "Linux"), v)
	case "darwin":
		assert.True(t, strings.HasPrefix(v, "macOS"), v)
	case "windows":
		assert.True(t, strings.HasPrefix(v, "Windows"), v)
	}
}

func TestAttachDetach(t *testing.T) {
	first := mocks.NewHandler(t)
	second := mocks.NewHandler(t)
	second.On("Handle", mock.Anything).Return(nil).Once()

	d := New(first)
	assert.True(t, d.Attached())

	prev := d.Detach()
	assert.Same(t, first, prev)
	assert.False(t, d.Attached())

	_, err := d.Handle(MethodLog, core.Payload{"message": "lost"})
	assert.ErrorIs(t, err, ErrDetached)

	// Non-log methods keep working while detached
	_, err = d.Handle(MethodGetPlatformVersion, nil)
	assert.NoError(t, err)

	assert.Nil(t, d.Attach(second))
	_, err = d.Handle(MethodLog, core.Payload{"message": "kept"})
	require.NoError(t, err)

	first.AssertNotCalled(t, "Handle", mock.Anything)
	first.AssertNotCalled(t, "Close")
}

func TestNew_NilHandler(t *testing.T) {
	d := New(nil)
	assert.False(t, d.Attached())

	_, err := d.Handle(MethodLog, core.Payload{"message": "m"})
	assert.ErrorIs(t, err, ErrDetached)
}

func TestWithFormatter(t *testing.T) {
	testTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(frozen.New(testTime))

	h := mocks.NewHandler(t)
	h.On("Handle", mock.Anything).Return(nil).Once()

	d := New(h, WithFormatter(formatter.NewConsoleFormatter(formatter.Config{})))
	_, err := d.Handle(MethodLog, core.Payload{"level": "W", "tag": "ui", "message": "slow frame"})
	require.NoError(t, err)

	e := h.Entries()[0]
	assert.Equal(t, "2026-01-15 12:00:00.000 ui/W: slow frame", e.Message)
	assert.True(t, e.Time.Equal(testTime))
}

func TestWithLogger_Diagnostics(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)

	h := mocks.NewHandler(t)
	d := New(h, WithLogger(zap.New(obsCore)))

	_, _ = d.Handle("frobnicate", nil)
	_, _ = d.Handle(MethodLog, core.Payload{})

	require.Equal(t, 1, logs.FilterMessage("unsupported method").Len())
	assert.Equal(t, "frobnicate",
		logs.FilterMessage("unsupported method").All()[0].ContextMap()["method"])
	assert.Equal(t, 1, logs.FilterMessage("record suppressed").Len())
}

func TestDispatcher_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf})
	defer h.Close()

	d := New(h)

	const goroutines, calls = 16, 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				if _, err := d.Handle(MethodLog, core.Payload{"level": "I", "message": "line"}); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, goroutines*calls)
	for _, l := range lines {
		assert.Equal(t, "line", l)
	}
	assert.Equal(t, uint64(goroutines*calls), d.Stats().Dispatched)
}

func BenchmarkDispatcher_Log(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: discard{}})
	d := New(h)
	p := core.Payload{"level": "I", "tag": "bench", "message": "benchmark message"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Handle(MethodLog, p)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
