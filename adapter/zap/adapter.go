package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xgate"
)

const defaultTSKey = "ts"

// levels is indexed by xgate.Level.Rank. zap has no level for FATAL that
// does not exit, so it shares ErrorLevel.
var levels = [...]zapcore.Level{
	zapcore.DebugLevel,
	zapcore.InfoLevel,
	zapcore.WarnLevel,
	zapcore.ErrorLevel,
	zapcore.ErrorLevel,
}

// Adapter writes xgate entries through a zap.Logger.
//
// Filtering belongs to xgate.Logger (gate, then floor). The only level zap
// holds is the floor, pushed through an optional AtomicLevel by SetMinLevel.
type Adapter struct {
	l     *zap.Logger
	al    *zap.AtomicLevel
	tsKey string
}

// New creates an adapter for the provided zap logger. A nil logger means zap.NewNop().
func New(l *zap.Logger) *Adapter {
	return NewWithAtomicLevel(l, nil, "")
}

// NewWithAtomicLevel wires al so SetMinLevel can move the backend floor,
// and writes the timestamp under tsKey (default "ts").
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = defaultTSKey
	}
	return &Adapter{l: l, al: al, tsKey: tsKey}
}

func (a *Adapter) With(fs []xgate.Field) xgate.Adapter {
	child := *a
	if len(fs) > 0 {
		child.l = a.l.With(appendFields(nil, fs)...)
	}
	return &child
}

// Log writes one entry stamped with xgate's timestamp. Check is kept even
// though the entry already passed the gate: it is how zap attaches caller
// and stacktrace options, and it returns nil only when the core's floor is
// higher than the xgate.Logger's, e.g. a zap.Logger shared with other code.
func (a *Adapter) Log(level xgate.Level, msg string, at time.Time, fields []xgate.Field) {
	ce := a.l.Check(levels[level.Rank()], msg)
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 1, 1+len(fields))
	zfs[0] = zap.String(a.tsKey, at.UTC().Format(time.RFC3339Nano))
	ce.Write(appendFields(zfs, fields)...)
}

func (a *Adapter) SetMinLevel(l xgate.Level) {
	if a.al != nil {
		a.al.SetLevel(levels[l.Rank()])
	}
}

// appendFields converts through zap.Any, whose type switch picks the same
// typed constructor (String, Int64, Duration, NamedError, Binary...) a hand
// written switch would.
func appendFields(dst []zap.Field, fs []xgate.Field) []zap.Field {
	for i := range fs {
		if fs[i].Skip() {
			continue
		}
		dst = append(dst, zap.Any(fs[i].K, fs[i].Value()))
	}
	return dst
}
