package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xgate"
)

// Config is an explicit, code-first configuration for zap + xgate.
type Config struct {
	Writer             io.Writer             // default: os.Stdout
	MinLevel           xgate.Level           // logger floor; the gate still applies on top
	Console            bool                  // zapcore console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, DefaultEncoderConfig()
	Caller             bool                  // include caller in logs
	CallerSkip         int                   // frames to skip when resolving caller; default 2
	TimestampFieldName string                // default "ts"
}

// DefaultEncoderConfig leaves TimeKey empty: xgate supplies the timestamp.
func DefaultEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "message",
		CallerKey:      "caller",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewFromConfig builds the adapter alone, backed by an AtomicLevel seeded
// from cfg.MinLevel.
func NewFromConfig(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 2
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = DefaultEncoderConfig()
	}
	// zap must not add a second time field.
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	al := zap.NewAtomicLevelAt(levels[cfg.MinLevel.Rank()])
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	opts := []zap.Option{zap.AddStacktrace(zapcore.FatalLevel + 1)}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}

	return NewWithAtomicLevel(zap.New(core, opts...), &al, cfg.TimestampFieldName)
}

// Use builds a zap-backed logger from Config, installs it as the global
// xgate logger, and returns it. Timestamps follow xclock.Default().
func Use(cfg Config) *xgate.Logger {
	logger, err := xgate.NewBuilder().
		WithAdapter(NewFromConfig(cfg)).
		WithMinLevel(cfg.MinLevel).
		WithClock(xclock.Default()).
		Build()
	if err != nil {
		panic(err)
	}
	xgate.SetGlobal(logger)
	return logger
}
