package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xgate"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xgate.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	MinLevel           xgate.Level          // logger floor; the gate still applies on top
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed through a LevelVar
	TimestampFieldName string               // default "ts"
}

// NewFromConfig builds the adapter alone.
func NewFromConfig(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlog(cfg.MinLevel))
	opts.Level = lv
	// xgate supplies the timestamp; drop the handler's own.
	userReplace := opts.ReplaceAttr
	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if userReplace != nil {
			return userReplace(groups, a)
		}
		return a
	}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return NewWithLevelVar(slog.New(h), lv, cfg.TimestampFieldName)
}

// Use builds a slog-backed logger from Config, sets it as global, and returns it.
func Use(cfg Config) *xgate.Logger {
	return xgate.UseAdapter(NewFromConfig(cfg), cfg.MinLevel)
}
