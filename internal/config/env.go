package config

import (
	"os"
	"strconv"
)

// FromEnv overlays FIMBER_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FIMBER_SINK"); v != "" {
		cfg.Sink.Kind = v
	}
	if v := os.Getenv("FIMBER_SINK_OUTPUT"); v != "" {
		cfg.Sink.Output = v
	}
	if v := os.Getenv("FIMBER_FORMATTER"); v != "" {
		cfg.Formatter.Kind = v
	}
	if v := os.Getenv("FIMBER_TIMESTAMP_FORMAT"); v != "" {
		cfg.Formatter.TimestampFormat = v
	}
	if v := os.Getenv("FIMBER_DECORATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Formatter.Decorate = b
		}
	}
	if v := os.Getenv("FIMBER_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("FIMBER_INPUT_FORMAT"); v != "" {
		cfg.Input.Format = v
	}
	if v := os.Getenv("FIMBER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FIMBER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FIMBER_PLATFORM_VERSION"); v != "" {
		cfg.PlatformVersion = v
	}
}
