// Package logrushandler is a native sink backed by github.com/sirupsen/logrus.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/handler"
)

// LogrusConfig holds configuration for the logrus handler
type LogrusConfig struct {
	// Logger receives the calls (default: logrus.StandardLogger())
	Logger *logrus.Logger
	// TagKey is the field the tag is written under (default: "tag")
	TagKey string
	// ExceptionKey is the field the exception is attached under (default: logrus.ErrorKey)
	ExceptionKey string
}

func applyLogrusDefaults(cfg *LogrusConfig) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.TagKey == "" {
		cfg.TagKey = "tag"
	}
	if cfg.ExceptionKey == "" {
		cfg.ExceptionKey = logrus.ErrorKey
	}
}

// levels maps portable levels to logrus levels. Logger.Log never exits,
// so FatalLevel is safe to use; only Logger.Fatal calls os.Exit.
var levels = handler.LevelTable[logrus.Level]{
	core.VerboseLevel: logrus.TraceLevel,
	core.DebugLevel:   logrus.DebugLevel,
	core.InfoLevel:    logrus.InfoLevel,
	core.WarnLevel:    logrus.WarnLevel,
	core.ErrorLevel:   logrus.ErrorLevel,
	core.FatalLevel:   logrus.FatalLevel,
}

// LogrusHandler logs each entry through a logrus.Logger
type LogrusHandler struct {
	l     *logrus.Logger
	cfg   LogrusConfig
	stats *handler.Stats
}

// NewLogrusHandler creates a new logrus handler
func NewLogrusHandler(cfg LogrusConfig) *LogrusHandler {
	applyLogrusDefaults(&cfg)
	return &LogrusHandler{
		l:     cfg.Logger,
		cfg:   cfg,
		stats: handler.NewStats(),
	}
}

// Handle emits one logrus entry
func (h *LogrusHandler) Handle(entry *core.Entry) error {
	level := levels.Lookup(entry.Level)
	if !h.l.IsLevelEnabled(level) {
		h.stats.IncrementDiscarded()
		return nil
	}

	fields := logrus.Fields{h.cfg.TagKey: entry.Tag}
	if entry.Exception != nil {
		fields[h.cfg.ExceptionKey] = entry.Exception
	}
	h.l.WithFields(fields).Log(level, entry.Message)

	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// AttachesException returns true: logrus carries errors as fields
func (h *LogrusHandler) AttachesException() bool {
	return true
}

// CanRecycleEntry returns true because logrus formats before Handle returns
func (h *LogrusHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *LogrusHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the logger's output belongs to its owner
func (h *LogrusHandler) Close() error {
	return nil
}
