package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/magillus/flutter-fimber/formatter"
	"github.com/magillus/flutter-fimber/handler"
	"github.com/magillus/flutter-fimber/handler/consolehandler"
	"github.com/magillus/flutter-fimber/handler/logrushandler"
	"github.com/magillus/flutter-fimber/handler/sloghandler"
	"github.com/magillus/flutter-fimber/handler/zaphandler"
	"github.com/magillus/flutter-fimber/handler/zerologhandler"
	"github.com/magillus/flutter-fimber/internal/config"
)

// NewSink builds the native sink selected by cfg, writing to w. Native
// loggers are opened at their most verbose level so that every dispatched
// record is emitted.
func NewSink(cfg config.SinkConfig, w io.Writer) (handler.Handler, error) {
	switch cfg.Kind {
	case config.SinkConsole, "":
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w}), nil

	case config.SinkZap:
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return zaphandler.NewZapHandler(zaphandler.ZapConfig{
			Logger:       zap.New(core),
			TagKey:       cfg.TagKey,
			ExceptionKey: cfg.ExceptionKey,
		}), nil

	case config.SinkZerolog:
		l := zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger()
		return zerologhandler.NewZerologHandler(zerologhandler.ZerologConfig{
			Logger:       &l,
			TagKey:       cfg.TagKey,
			ExceptionKey: cfg.ExceptionKey,
		}), nil

	case config.SinkLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		return logrushandler.NewLogrusHandler(logrushandler.LogrusConfig{
			Logger:       l,
			TagKey:       cfg.TagKey,
			ExceptionKey: cfg.ExceptionKey,
		}), nil

	case config.SinkSlog:
		l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       sloghandler.LevelVerbose,
			ReplaceAttr: sloghandler.ReplaceLevelNames,
		}))
		return sloghandler.NewSlogHandler(sloghandler.SlogConfig{
			Logger:       l,
			TagKey:       cfg.TagKey,
			ExceptionKey: cfg.ExceptionKey,
		}), nil

	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Kind)
	}
}

// NewFormatter builds the formatter selected by cfg
func NewFormatter(cfg config.FormatterConfig) (formatter.Formatter, error) {
	fc := formatter.Config{
		TimestampFormat: cfg.TimestampFormat,
		Decorate:        cfg.Decorate,
	}
	switch cfg.Kind {
	case config.FormatterLine, "":
		return formatter.NewLineFormatter(), nil
	case config.FormatterConsole:
		return formatter.NewConsoleFormatter(fc), nil
	case config.FormatterJSON:
		return formatter.NewJSONFormatter(fc), nil
	default:
		return nil, fmt.Errorf("unknown formatter %q", cfg.Kind)
	}
}

// NewDiagnostics builds the zap logger for the command's own messages
func NewDiagnostics(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}
