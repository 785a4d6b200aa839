package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xgate"
)

// Config is an explicit, code-first configuration for zerolog + xgate.
type Config struct {
	Writer            io.Writer   // default: os.Stdout
	MinLevel          xgate.Level // logger floor; the gate still applies on top
	Console           bool        // pretty console output instead of JSON
	ConsoleTimeFormat string      // only used if Console==true; default time.RFC3339Nano
	Caller            bool        // include caller in logs
	CallerSkip        int         // frames to skip when resolving caller; default 5
}

// Use builds a zerolog-backed logger from Config, installs it as the global
// xgate logger, and returns it. Timestamps follow xclock.Default().
func Use(cfg Config) *xgate.Logger {
	ad := NewFromConfig(cfg)
	logger, err := xgate.NewBuilder().
		WithAdapter(ad).
		WithMinLevel(cfg.MinLevel).
		WithClock(xclock.Default()).
		Build()
	if err != nil {
		// Build only fails with a nil adapter which cannot happen here.
		panic(err)
	}
	xgate.SetGlobal(logger)
	return logger
}

// NewFromConfig builds the adapter alone, for callers assembling their own
// xgate.Builder.
func NewFromConfig(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 5
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Align console's leading timestamp column with our authoritative ts key.
		zerolog.TimestampFieldName = "ts"
		cw := zerolog.ConsoleWriter{Out: w}
		cw.TimeFormat = cfg.ConsoleTimeFormat
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	if cfg.Caller {
		zerolog.CallerSkipFrameCount = cfg.CallerSkip
		zl = zl.With().Caller().Logger()
	}

	ad := New(zl)
	ad.SetMinLevel(cfg.MinLevel)
	return ad
}
