package dispatch

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/formatter"
	"github.com/magillus/flutter-fimber/handler"
)

// Boundary methods served by the dispatcher
const (
	MethodLog                = "log"
	MethodGetPlatformVersion = "getPlatformVersion"
)

// sink caches the optional handler capabilities so they are resolved once
// per Attach instead of once per call.
type sink struct {
	h          handler.Handler
	attachesEx bool
	recycle    bool
}

func newSink(h handler.Handler) *sink {
	return &sink{
		h:          h,
		attachesEx: handler.AttachesException(h),
		recycle:    handler.CanRecycleEntry(h),
	}
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithFormatter sets the formatter used for log calls (default: LineFormatter)
func WithFormatter(f formatter.Formatter) Option {
	return func(d *Dispatcher) {
		if f != nil {
			d.formatter = f
		}
	}
}

// WithLogger sets the logger for the dispatcher's own diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPlatformVersion overrides the getPlatformVersion reply
func WithPlatformVersion(fn func() string) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.platformVersion = fn
		}
	}
}

// Dispatcher translates boundary calls into native sink calls. It is safe
// for concurrent use.
type Dispatcher struct {
	sink            atomic.Pointer[sink]
	formatter       formatter.Formatter
	logger          *zap.Logger
	platformVersion func() string

	dispatched  atomic.Uint64
	suppressed  atomic.Uint64
	unsupported atomic.Uint64
	failed      atomic.Uint64
}

// New creates a dispatcher with h attached. h may be nil, in which case
// log calls fail with ErrDetached until a sink is attached.
func New(h handler.Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		formatter:       formatter.NewLineFormatter(),
		logger:          zap.NewNop(),
		platformVersion: PlatformVersion,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Attach(h)
	return d
}

// Attach installs h as the sink and returns the previously attached one.
// Attaching nil is the same as Detach.
func (d *Dispatcher) Attach(h handler.Handler) handler.Handler {
	var next *sink
	if h != nil {
		next = newSink(h)
	}
	return unwrap(d.sink.Swap(next))
}

// Detach removes the sink and returns it. The sink is not closed.
func (d *Dispatcher) Detach() handler.Handler {
	return unwrap(d.sink.Swap(nil))
}

// Attached reports whether a sink is attached
func (d *Dispatcher) Attached() bool {
	return d.sink.Load() != nil
}

func unwrap(s *sink) handler.Handler {
	if s == nil {
		return nil
	}
	return s.h
}

// Handle serves one boundary call. A successful log call returns 0.
func (d *Dispatcher) Handle(method string, args core.Payload) (any, error) {
	switch method {
	case MethodLog:
		if err := d.Log(args); err != nil {
			return nil, err
		}
		return 0, nil
	case MethodGetPlatformVersion:
		return d.platformVersion(), nil
	default:
		d.unsupported.Add(1)
		d.logger.Debug("unsupported method", zap.String("method", method))
		return nil, fmt.Errorf("%w: %q", ErrNotImplemented, method)
	}
}

// Log extracts a record from p and hands it to the sink. Sink errors are
// returned unchanged.
func (d *Dispatcher) Log(p core.Payload) error {
	s := d.sink.Load()
	if s == nil {
		return ErrDetached
	}

	rec := core.Extract(p)

	var ex error
	if s.attachesEx && rec.HasExceptionDump() {
		dump, _ := rec.Exception()
		ex = core.Exception(dump)
		rec = rec.WithoutException()
	}

	msg := d.formatter.Format(&rec)
	if msg == "" {
		d.suppressed.Add(1)
		d.logger.Debug("record suppressed",
			zap.String("tag", rec.Tag()),
			zap.Stringer("level", rec.Level()))
		return nil
	}

	entry := core.GetEntry()
	entry.Time = rec.Time()
	entry.Level = rec.Level()
	entry.Tag = rec.Tag()
	entry.Message = msg
	entry.Exception = ex

	err := s.h.Handle(entry)
	if s.recycle {
		core.PutEntry(entry)
	}
	if err != nil {
		d.failed.Add(1)
		d.logger.Debug("sink call failed", zap.Error(err))
		return err
	}

	d.dispatched.Add(1)
	return nil
}

// Stats is a point-in-time copy of the dispatcher counters
type Stats struct {
	Dispatched  uint64
	Suppressed  uint64
	Unsupported uint64
	Failed      uint64
}

// Stats returns the current counters
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Dispatched:  d.dispatched.Load(),
		Suppressed:  d.suppressed.Load(),
		Unsupported: d.unsupported.Load(),
		Failed:      d.failed.Load(),
	}
}
