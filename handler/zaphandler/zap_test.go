package zaphandler

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

func newObserved(level zapcore.Level) (*ZapHandler, *observer.ObservedLogs) {
	obsCore, logs := observer.New(level)
	return NewZapHandler(ZapConfig{Logger: zap.New(obsCore)}), logs
}

func TestZapHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.VerboseLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.FatalLevel, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			h, logs := newObserved(zapcore.DebugLevel)

			if err := h.Handle(&core.Entry{Level: tt.level, Tag: "net", Message: "msg"}); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 zap entry, got %d", len(entries))
			}
			if entries[0].Level != tt.want {
				t.Errorf("level = %v, want %v", entries[0].Level, tt.want)
			}
		})
	}
}

func TestZapHandler_TagAndException(t *testing.T) {
	h, logs := newObserved(zapcore.DebugLevel)

	err := h.Handle(&core.Entry{
		Level:     core.ErrorLevel,
		Tag:       "net",
		Message:   "[conn failed]",
		Exception: core.Exception("Timeout"),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 zap entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "[conn failed]" {
		t.Errorf("message = %q", e.Message)
	}
	ctx := e.ContextMap()
	if ctx["tag"] != "net" {
		t.Errorf("tag = %v", ctx["tag"])
	}
	if ctx["ex"] != "Timeout" {
		t.Errorf("ex = %v", ctx["ex"])
	}
}

func TestZapHandler_NoException(t *testing.T) {
	h, logs := newObserved(zapcore.DebugLevel)

	_ = h.Handle(&core.Entry{Level: core.InfoLevel, Tag: "app", Message: "hello"})

	if _, ok := logs.All()[0].ContextMap()["ex"]; ok {
		t.Error("unexpected ex field")
	}
}

func TestZapHandler_DisabledLevel(t *testing.T) {
	h, logs := newObserved(zapcore.WarnLevel)

	_ = h.Handle(&core.Entry{Level: core.DebugLevel, Tag: "app", Message: "quiet"})

	if logs.Len() != 0 {
		t.Errorf("expected zap to drop the entry, got %d", logs.Len())
	}
	if h.Stats().ProcessedTotal != 0 {
		t.Errorf("ProcessedTotal = %d, want 0", h.Stats().ProcessedTotal)
	}
	if h.Stats().Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", h.Stats().Discarded)
	}
}

func TestZapHandler_CustomKeys(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(ZapConfig{Logger: zap.New(obsCore), TagKey: "source", ExceptionKey: "stack"})

	_ = h.Handle(&core.Entry{Level: core.WarnLevel, Tag: "db", Message: "m", Exception: core.Exception("trace")})

	ctx := logs.All()[0].ContextMap()
	if ctx["source"] != "db" || ctx["stack"] != "trace" {
		t.Errorf("unexpected context: %v", ctx)
	}
}

func TestZapHandler_OptionalInterfaces(t *testing.T) {
	h := NewZapHandler(ZapConfig{})
	if !handler.AttachesException(h) {
		t.Error("zap handler should attach exceptions natively")
	}
	if !handler.CanRecycleEntry(h) {
		t.Error("zap handler should allow entry recycling")
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() on nop logger error = %v", err)
	}
}
