package logger

import (
	"fmt"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/dispatch"
)

// Caller delivers one boundary call. dispatch.Dispatcher implements it;
// any transport that forwards (method, args) pairs can be used instead.
type Caller interface {
	Handle(method string, args core.Payload) (any, error)
}

// Logger emits log calls across the boundary (immutable)
type Logger struct {
	caller  Caller
	tag     string
	prefix  string
	postfix string
	onError func(error)
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	caller  Caller
	tag     string
	prefix  string
	postfix string
	onError func(error)
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCaller sets the receiving side of log calls
func (b *Builder) WithCaller(c Caller) *Builder {
	b.caller = c
	return b
}

// WithTag sets the tag sent with every call. An empty tag lets the
// receiver apply its default.
func (b *Builder) WithTag(tag string) *Builder {
	b.tag = tag
	return b
}

// WithPrefix sets the decoration written before each message
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithPostfix sets the decoration written after each message
func (b *Builder) WithPostfix(postfix string) *Builder {
	b.postfix = postfix
	return b
}

// WithErrorHandler sets a function that receives failed calls. By default
// failures are dropped.
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		caller:  b.caller,
		tag:     b.tag,
		prefix:  b.prefix,
		postfix: b.postfix,
		onError: b.onError,
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// WithTag creates a new Logger with a different tag
func (l *Logger) WithTag(tag string) *Logger {
	c := l.clone()
	c.tag = tag
	return c
}

// WithDecoration creates a new Logger with a different prefix and postfix
func (l *Logger) WithDecoration(prefix, postfix string) *Logger {
	c := l.clone()
	c.prefix = prefix
	c.postfix = postfix
	return c
}

// Tag returns the logger's tag
func (l *Logger) Tag() string {
	return l.tag
}

// Payload builds the payload of a log call. Empty optional fields are
// left out so the receiver applies its defaults.
func (l *Logger) Payload(code, msg string, err error) core.Payload {
	p := core.Payload{
		core.KeyLevel:   code,
		core.KeyMessage: msg,
	}
	if l.tag != "" {
		p[core.KeyTag] = l.tag
	}
	if err != nil {
		p[core.KeyException] = fmt.Sprintf("%+v", err)
	}
	if l.prefix != "" {
		p[core.KeyPrefix] = l.prefix
	}
	if l.postfix != "" {
		p[core.KeyPostfix] = l.postfix
	}
	return p
}

// Log sends one log call with the given level code and returns the
// receiver's error. Unknown codes are logged as verbose by the receiver.
func (l *Logger) Log(code, msg string, err error) error {
	if l.caller == nil {
		return dispatch.ErrDetached
	}
	_, cerr := l.caller.Handle(dispatch.MethodLog, l.Payload(code, msg, err))
	return cerr
}

func (l *Logger) emit(level core.Level, msg string, err error) {
	l.emitCode(level.Code(), msg, err)
}

func (l *Logger) emitCode(code, msg string, err error) {
	if l.caller == nil {
		return
	}
	if cerr := l.Log(code, msg, err); cerr != nil && l.onError != nil {
		l.onError(cerr)
	}
}

// V logs a verbose message. err, if non-nil, is sent as the exception dump.
func (l *Logger) V(msg string, err error) {
	l.emit(core.VerboseLevel, msg, err)
}

// D logs a debug message
func (l *Logger) D(msg string, err error) {
	l.emit(core.DebugLevel, msg, err)
}

// I logs an info message
func (l *Logger) I(msg string, err error) {
	l.emit(core.InfoLevel, msg, err)
}

// W logs a warning message
func (l *Logger) W(msg string, err error) {
	l.emit(core.WarnLevel, msg, err)
}

// E logs an error message
func (l *Logger) E(msg string, err error) {
	l.emit(core.ErrorLevel, msg, err)
}

// F logs a fatal message. Unlike log.Fatal it does not exit.
func (l *Logger) F(msg string, err error) {
	l.emit(core.FatalLevel, msg, err)
}

// WTF logs a failure that should never happen, at fatal severity
func (l *Logger) WTF(msg string, err error) {
	l.emitCode("WTF", msg, err)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	l.emit(core.VerboseLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting. It does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.emit(core.FatalLevel, fmt.Sprintf(format, args...), nil)
}
