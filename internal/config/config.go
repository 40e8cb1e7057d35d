package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Sink kinds
const (
	SinkConsole = "console"
	SinkZap     = "zap"
	SinkZerolog = "zerolog"
	SinkLogrus  = "logrus"
	SinkSlog    = "slog"
)

// Formatter kinds
const (
	FormatterLine    = "line"
	FormatterConsole = "console"
	FormatterJSON    = "json"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Sink      SinkConfig      `yaml:"sink"`
	Formatter FormatterConfig `yaml:"formatter"`
	Input     InputConfig     `yaml:"input"`
	Log       LogConfig       `yaml:"log"`
	// PlatformVersion overrides the getPlatformVersion reply when set
	PlatformVersion string `yaml:"platformVersion"`
}

// SinkConfig selects the native sink
type SinkConfig struct {
	Kind string `yaml:"kind"`
	// Output is "stdout" or "stderr"
	Output       string `yaml:"output"`
	TagKey       string `yaml:"tagKey"`
	ExceptionKey string `yaml:"exceptionKey"`
}

// FormatterConfig selects how records are rendered
type FormatterConfig struct {
	Kind            string `yaml:"kind"`
	TimestampFormat string `yaml:"timestampFormat"`
	Decorate        bool   `yaml:"decorate"`
}

// InputConfig describes where calls are read from
type InputConfig struct {
	// Path is a file or "-" for stdin. zstd input is detected automatically.
	Path string `yaml:"path"`
	// Format is "json" or "cbor"
	Format string `yaml:"format"`
}

// LogConfig configures the command's own diagnostics
type LogConfig struct {
	Level string `yaml:"level"`
	// Format is "console" or "json"
	Format string `yaml:"format"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Sink: SinkConfig{
			Kind:   SinkConsole,
			Output: "stdout",
		},
		Formatter: FormatterConfig{
			Kind: FormatterLine,
		},
		Input: InputConfig{
			Path:   "-",
			Format: "json",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML or JSON file. JSON is read with the
// YAML decoder since it is a subset. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	var err error
	switch c.Sink.Kind {
	case SinkConsole, SinkZap, SinkZerolog, SinkLogrus, SinkSlog:
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown sink %q", c.Sink.Kind))
	}
	switch c.Sink.Output {
	case "stdout", "stderr":
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown sink output %q", c.Sink.Output))
	}
	switch c.Formatter.Kind {
	case FormatterLine, FormatterConsole, FormatterJSON:
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown formatter %q", c.Formatter.Kind))
	}
	switch c.Input.Format {
	case "json", "cbor":
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown input format %q", c.Input.Format))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown log format %q", c.Log.Format))
	}
	return err
}
