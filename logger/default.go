package logger

import (
	"sync"

	"github.com/magillus/flutter-fimber/dispatch"
	"github.com/magillus/flutter-fimber/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a dispatcher writing to stdout
	d := dispatch.New(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}))

	defaultLogger = NewBuilder().
		WithCaller(d).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// V logs a verbose message using the default logger
func V(msg string, err error) {
	Default().V(msg, err)
}

// D logs a debug message using the default logger
func D(msg string, err error) {
	Default().D(msg, err)
}

// I logs an info message using the default logger
func I(msg string, err error) {
	Default().I(msg, err)
}

// W logs a warning message using the default logger
func W(msg string, err error) {
	Default().W(msg, err)
}

// E logs an error message using the default logger
func E(msg string, err error) {
	Default().E(msg, err)
}

// F logs a fatal message using the default logger
func F(msg string, err error) {
	Default().F(msg, err)
}

// WTF logs an unexpected failure using the default logger
func WTF(msg string, err error) {
	Default().WTF(msg, err)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Tagged returns a copy of the default logger with the given tag
func Tagged(tag string) *Logger {
	return Default().WithTag(tag)
}
