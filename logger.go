package xgate

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

type Logger struct {
	adapter    Adapter
	minLevel   Level
	clock      xclock.Clock
	baseFields []Field

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
	}
	if len(cfg.Fields) > 0 {
		l.adapter = cfg.Adapter.With(cfg.Fields)
		l.baseFields = copyFields(nil, cfg.Fields)
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("xgate: global logger not set. Build one and call xgate.SetGlobal(...)")
	}
	return l
}

// Enabled reports whether logs at 'level' would be emitted by this logger:
// the level must reach both the global gate and this logger's floor.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= GetLevel() && level >= l.minLevel
}

// Level entry points returning fluent builders. A disabled level yields a nil
// *Event whose methods are no-ops.

func (l *Logger) Debug() *Event { return l.newEvent(LevelDebug) }
func (l *Logger) Info() *Event  { return l.newEvent(LevelInfo) }
func (l *Logger) Warn() *Event  { return l.newEvent(LevelWarn) }
func (l *Logger) Error() *Event { return l.newEvent(LevelError) }

// Fatal logs at LevelFatal. It never exits the process.
func (l *Logger) Fatal() *Event { return l.newEvent(LevelFatal) }

func (l *Logger) newEvent(level Level) *Event {
	if !l.Enabled(level) {
		return nil
	}
	return getEvent(l, level)
}

// Logf formats and emits a message at level. It returns the number of bytes
// in the emitted message, or 0 when the level is gated and nothing was formatted.
func (l *Logger) Logf(level Level, format string, args ...any) int32 {
	if !l.Enabled(level) {
		return 0
	}
	msg := fmt.Sprintf(format, args...)
	l.emit(level, msg, nil)
	return int32(len(msg))
}

// Printf binds level into a PrintfFunc. The gate is consulted on every call,
// so the returned function follows later SetLevel calls.
func (l *Logger) Printf(level Level) PrintfFunc {
	return func(format string, args ...any) int32 {
		return l.Logf(level, format, args...)
	}
}

// With returns a child logger with bound fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		adapter:    l.adapter.With(fs),
		minLevel:   l.minLevel,
		clock:      l.clock,
		baseFields: append(copyFields(nil, l.baseFields), fs...),
	}
	child.observers.Store(l.snapshotObservers())
	return child
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) emit(level Level, msg string, evFields []Field) {
	// The gate may have moved between event creation and Msg.
	if !l.Enabled(level) {
		return
	}
	at := l.now()

	// Fast path: adapter handles bound fields internally; pass only event fields.
	l.adapter.Log(level, msg, at, evFields)

	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return
	}

	merged := make([]Field, 0, len(l.baseFields)+len(evFields))
	merged = copyFields(merged, l.baseFields)
	merged = copyFields(merged, evFields)

	entry := Entry{
		At:      at,
		Level:   level,
		Message: msg,
		Fields:  merged,
	}

	for _, o := range obs {
		o.OnLog(entry)
	}
}
