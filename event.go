package xgate

import (
	"sync"
	"time"
)

// Event is a fluent builder (Builder pattern) for a single log entry.
// API: Logger().Info().Str("from", ...).Dur("to", dur).Int("to", v).Msg("state changed")
//
// A nil *Event is valid; every method on it is a no-op. Loggers hand out nil
// events for levels the gate filters, so no fields are collected.
type Event struct {
	l      *Logger
	level  Level
	fields []Field
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(l *Logger, level Level) *Event {
	ev := eventPool.Get().(*Event)
	ev.l = l
	ev.level = level
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	e.l = nil
	e.level = 0
	eventPool.Put(e)
}

func (e *Event) add(f Field) *Event {
	if e == nil {
		return nil
	}
	e.fields = append(e.fields, f)
	return e
}

func (e *Event) Str(k, v string) *Event               { return e.add(FStr(k, v)) }
func (e *Event) Int(k string, v int) *Event           { return e.add(FInt(k, int64(v))) }
func (e *Event) Int64(k string, v int64) *Event       { return e.add(FInt(k, v)) }
func (e *Event) Uint64(k string, v uint64) *Event     { return e.add(FUint(k, v)) }
func (e *Event) Float64(k string, v float64) *Event   { return e.add(FFloat(k, v)) }
func (e *Event) Bool(k string, v bool) *Event         { return e.add(FBool(k, v)) }
func (e *Event) Dur(k string, v time.Duration) *Event { return e.add(FDur(k, v)) }
func (e *Event) Time(k string, v time.Time) *Event    { return e.add(FTime(k, v)) }
func (e *Event) Bytes(k string, v []byte) *Event      { return e.add(FBytes(k, v)) }
func (e *Event) Any(k string, v any) *Event           { return e.add(FAny(k, v)) }

// Err records err under the "error" key. A nil err is skipped.
func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	return e.add(FErr("error", err))
}

// Enabled reports whether Msg will emit anything.
func (e *Event) Enabled() bool { return e != nil }

// Msg terminates the builder and emits the event.
func (e *Event) Msg(msg string) {
	if e == nil {
		return
	}
	e.l.emit(e.level, msg, e.fields)
	e.putBack()
}
