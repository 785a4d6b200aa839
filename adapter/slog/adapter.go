package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/xgate"
)

// Adapter adapts xgate to the Go slog API (Adapter Strategy).
// It builds slog.Attrs directly and uses LogAttrs.
type Adapter struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string
}

// xgate levels share slog's numeric scale.
func toSlog(l xgate.Level) slog.Level {
	return slog.Level(l)
}

// New wraps l. A nil logger means slog.Default().
func New(l *slog.Logger) *Adapter {
	return NewWithLevelVar(l, nil, "")
}

// NewWithLevelVar wires lv so SetMinLevel can move the handler's filter,
// and writes the timestamp under tsKey (default "ts").
func NewWithLevelVar(l *slog.Logger, lv *slog.LevelVar, tsKey string) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, lv: lv, tsKey: tsKey}
}

func (a *Adapter) With(fs []xgate.Field) xgate.Adapter {
	child := *a
	if len(fs) == 0 {
		return &child
	}
	args := make([]any, len(fs))
	for i := range fs {
		args[i] = toAttr(fs[i])
	}
	child.l = a.l.With(args...)
	return &child
}

func (a *Adapter) Log(level xgate.Level, msg string, at time.Time, fields []xgate.Field) {
	lvl := toSlog(level)
	ctx := context.Background()
	if !a.l.Enabled(ctx, lvl) {
		return
	}

	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.Time(a.tsKey, at))
	for i := range fields {
		attrs = append(attrs, toAttr(fields[i]))
	}
	a.l.LogAttrs(ctx, lvl, msg, attrs...)
}

func (a *Adapter) SetMinLevel(l xgate.Level) {
	if a.lv == nil {
		return
	}
	a.lv.Set(toSlog(l))
}

// toAttr goes through slog.Any, which stores strings, numbers, bools,
// durations and times as typed slog.Values. A skipped field becomes the
// empty Attr, which handlers drop.
func toAttr(f xgate.Field) slog.Attr {
	if f.Skip() {
		return slog.Attr{}
	}
	return slog.Any(f.K, f.Value())
}
