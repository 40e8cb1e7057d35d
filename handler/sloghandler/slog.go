package sloghandler

import (
	"context"
	"log/slog"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

// slog levels for the portable levels slog has no name for
const (
	LevelVerbose = slog.LevelDebug - 4
	LevelFatal   = slog.LevelError + 4
)

// SlogConfig holds configuration for the slog handler
type SlogConfig struct {
	// Logger receives the calls (default: slog.Default())
	Logger *slog.Logger
	// TagKey is the attribute the tag is written under (default: "tag")
	TagKey string
	// ExceptionKey is the attribute the exception is attached under (default: "ex")
	ExceptionKey string
}

func applySlogDefaults(cfg *SlogConfig) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TagKey == "" {
		cfg.TagKey = "tag"
	}
	if cfg.ExceptionKey == "" {
		cfg.ExceptionKey = "ex"
	}
}

var levels = handler.LevelTable[slog.Level]{
	core.VerboseLevel: LevelVerbose,
	core.DebugLevel:   slog.LevelDebug,
	core.InfoLevel:    slog.LevelInfo,
	core.WarnLevel:    slog.LevelWarn,
	core.ErrorLevel:   slog.LevelError,
	core.FatalLevel:   LevelFatal,
}

// SlogHandler logs each entry through a *slog.Logger
type SlogHandler struct {
	l     *slog.Logger
	cfg   SlogConfig
	stats *handler.Stats
}

// NewSlogHandler creates a new slog handler
func NewSlogHandler(cfg SlogConfig) *SlogHandler {
	applySlogDefaults(&cfg)
	return &SlogHandler{
		l:     cfg.Logger,
		cfg:   cfg,
		stats: handler.NewStats(),
	}
}

// Handle emits one slog record
func (h *SlogHandler) Handle(entry *core.Entry) error {
	ctx := context.Background()
	level := levels.Lookup(entry.Level)
	if !h.l.Enabled(ctx, level) {
		h.stats.IncrementDiscarded()
		return nil
	}

	if entry.Exception != nil {
		h.l.LogAttrs(ctx, level, entry.Message,
			slog.String(h.cfg.TagKey, entry.Tag),
			slog.Any(h.cfg.ExceptionKey, entry.Exception))
	} else {
		h.l.LogAttrs(ctx, level, entry.Message, slog.String(h.cfg.TagKey, entry.Tag))
	}

	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// AttachesException returns true: slog carries errors as attributes
func (h *SlogHandler) AttachesException() bool {
	return true
}

// CanRecycleEntry returns true because slog handlers copy what they keep
func (h *SlogHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *SlogHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op
func (h *SlogHandler) Close() error {
	return nil
}

// ReplaceLevelNames is a slog.HandlerOptions.ReplaceAttr function that
// prints LevelVerbose and LevelFatal as "VERBOSE" and "FATAL" instead of
// "DEBUG-4" and "ERROR+4".
func ReplaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelVerbose:
		a.Value = slog.StringValue("VERBOSE")
	case LevelFatal:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
