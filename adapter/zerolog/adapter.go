package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xgate"
)

const tsKey = "ts"

// levels is indexed by xgate.Level.Rank. FATAL is written at error level:
// zerolog's FatalLevel would exit the process.
var levels = [...]zerolog.Level{
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
	zerolog.ErrorLevel,
}

// Adapter writes xgate entries through an rs/zerolog Logger.
//
// By the time Log runs, xgate.Logger has already checked the gate and its own
// floor. The zerolog level therefore only ever mirrors that floor (see
// SetMinLevel) and never tracks the gate, so lowering the gate is never
// undone by a stale backend level.
type Adapter struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

// With binds fs onto a child zerolog.Logger once, so Log never re-encodes them.
func (a *Adapter) With(fs []xgate.Field) xgate.Adapter {
	child := *a
	if kv := fieldList(fs); len(kv) > 0 {
		child.l = a.l.With().Fields(kv).Logger()
	}
	return &child
}

// Log writes one entry stamped with xgate's timestamp as an RFC3339Nano string,
// independent of zerolog.TimeFieldFormat. WithLevel returns nil below the
// floor, which only happens when the Adapter is used without an xgate.Logger.
func (a *Adapter) Log(level xgate.Level, msg string, at time.Time, fields []xgate.Field) {
	ev := a.l.WithLevel(mapLevel(level))
	if ev == nil {
		return
	}
	ev.Str(tsKey, at.UTC().Format(time.RFC3339Nano)).
		Fields(fieldList(fields)).
		Msg(msg)
}

// SetMinLevel receives the xgate.Logger floor from xgate.Builder.
func (a *Adapter) SetMinLevel(l xgate.Level) {
	a.l = a.l.Level(mapLevel(l))
}

func mapLevel(l xgate.Level) zerolog.Level { return levels[l.Rank()] }

// fieldList flattens fs into zerolog's key/value list. Event.Fields and
// Context.Fields both encode each value by its concrete type, so bound and
// event fields go through the same path.
func fieldList(fs []xgate.Field) []any {
	if len(fs) == 0 {
		return nil
	}
	kv := make([]any, 0, 2*len(fs))
	for i := range fs {
		if fs[i].Skip() {
			continue
		}
		kv = append(kv, fs[i].K, fs[i].Value())
	}
	return kv
}
