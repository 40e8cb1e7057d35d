// Package zerologhandler is a native sink backed by github.com/rs/zerolog.
package zerologhandler

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

// ZerologConfig holds configuration for the zerolog handler
type ZerologConfig struct {
	// Logger receives the calls (default: JSON to os.Stdout)
	Logger *zerolog.Logger
	// TagKey is the field the tag is written under (default: "tag")
	TagKey string
	// ExceptionKey is the field the exception is attached under (default: "ex")
	ExceptionKey string
}

func applyZerologDefaults(cfg *ZerologConfig) {
	if cfg.Logger == nil {
		l := zerolog.New(os.Stdout).With().Timestamp().Logger()
		cfg.Logger = &l
	}
	if cfg.TagKey == "" {
		cfg.TagKey = "tag"
	}
	if cfg.ExceptionKey == "" {
		cfg.ExceptionKey = "ex"
	}
}

// levels maps portable levels to zerolog levels. zerolog has a level for
// every portable one; WithLevel never exits, even for FatalLevel.
var levels = handler.LevelTable[zerolog.Level]{
	core.VerboseLevel: zerolog.TraceLevel,
	core.DebugLevel:   zerolog.DebugLevel,
	core.InfoLevel:    zerolog.InfoLevel,
	core.WarnLevel:    zerolog.WarnLevel,
	core.ErrorLevel:   zerolog.ErrorLevel,
	core.FatalLevel:   zerolog.FatalLevel,
}

// ZerologHandler logs each entry through a zerolog.Logger
type ZerologHandler struct {
	l     zerolog.Logger
	cfg   ZerologConfig
	stats *handler.Stats
}

// NewZerologHandler creates a new zerolog handler
func NewZerologHandler(cfg ZerologConfig) *ZerologHandler {
	applyZerologDefaults(&cfg)
	return &ZerologHandler{
		l:     *cfg.Logger,
		cfg:   cfg,
		stats: handler.NewStats(),
	}
}

// Handle emits one zerolog event
func (h *ZerologHandler) Handle(entry *core.Entry) error {
	ev := h.l.WithLevel(levels.Lookup(entry.Level))
	if ev == nil {
		h.stats.IncrementDiscarded()
		return nil
	}
	ev = ev.Str(h.cfg.TagKey, entry.Tag)
	if entry.Exception != nil {
		ev = ev.AnErr(h.cfg.ExceptionKey, entry.Exception)
	}
	ev.Msg(entry.Message)

	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// AttachesException returns true: zerolog carries errors as fields
func (h *ZerologHandler) AttachesException() bool {
	return true
}

// CanRecycleEntry returns true because the event is written before Handle returns
func (h *ZerologHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *ZerologHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; zerolog does not buffer
func (h *ZerologHandler) Close() error {
	return nil
}
