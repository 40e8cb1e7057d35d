// Package zaphandler is a native sink backed by go.uber.org/zap.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

// ZapConfig holds configuration for the zap handler
type ZapConfig struct {
	// Logger receives the calls (default: zap.NewNop())
	Logger *zap.Logger
	// TagKey is the field the tag is written under (default: "tag")
	TagKey string
	// ExceptionKey is the field the exception is attached under (default: "ex")
	ExceptionKey string
}

func applyZapDefaults(cfg *ZapConfig) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TagKey == "" {
		cfg.TagKey = "tag"
	}
	if cfg.ExceptionKey == "" {
		cfg.ExceptionKey = "ex"
	}
}

// levels maps portable levels to zap levels. Fatal is logged at error
// level: zap's own Fatal and DPanic would exit or panic the host.
var levels = handler.LevelTable[zapcore.Level]{
	core.VerboseLevel: zapcore.DebugLevel,
	core.DebugLevel:   zapcore.DebugLevel,
	core.InfoLevel:    zapcore.InfoLevel,
	core.WarnLevel:    zapcore.WarnLevel,
	core.ErrorLevel:   zapcore.ErrorLevel,
	core.FatalLevel:   zapcore.ErrorLevel,
}

// ZapHandler logs each entry through a zap.Logger. Exceptions are attached
// as a named error field instead of being rendered into the message.
type ZapHandler struct {
	l     *zap.Logger
	cfg   ZapConfig
	stats *handler.Stats
}

// NewZapHandler creates a new zap handler
func NewZapHandler(cfg ZapConfig) *ZapHandler {
	applyZapDefaults(&cfg)
	return &ZapHandler{
		l:     cfg.Logger,
		cfg:   cfg,
		stats: handler.NewStats(),
	}
}

// Handle emits one zap entry
func (h *ZapHandler) Handle(entry *core.Entry) error {
	// Check avoids building fields when zap has the level disabled
	ce := h.l.Check(levels.Lookup(entry.Level), entry.Message)
	if ce == nil {
		h.stats.IncrementDiscarded()
		return nil
	}

	fields := make([]zap.Field, 0, 2)
	fields = append(fields, zap.String(h.cfg.TagKey, entry.Tag))
	if entry.Exception != nil {
		fields = append(fields, zap.NamedError(h.cfg.ExceptionKey, entry.Exception))
	}
	ce.Write(fields...)

	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// AttachesException returns true: zap carries errors as fields
func (h *ZapHandler) AttachesException() bool {
	return true
}

// CanRecycleEntry returns true because zap copies what it needs
func (h *ZapHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *ZapHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the logger. Sync errors on terminals are common and are
// returned as-is for the caller to judge.
func (h *ZapHandler) Close() error {
	return h.l.Sync()
}
