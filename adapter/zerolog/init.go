package zerologadapter

import (
	"io"
	"os"
	"strconv"

	"github.com/trickstertwo/xgate"
)

// envConfig is the XGATE_* snapshot taken at package initialization. The
// factory registered below only builds adapters from it; it never touches
// the gate.
var envConfig Config

// Importing this package registers zerolog as the adapter behind
// xgate.Default()/New(). The environment is read once, here:
//
//	XGATE_LEVEL or XGATE_MIN_LEVEL: debug|info|warn|error|fatal, seeds the global gate
//	XGATE_CONSOLE=1              : enable ConsoleWriter (pretty output)
//	XGATE_CALLER=1               : include caller
//	XGATE_CALLER_SKIP=<int>      : frames to skip (default 5)
//	XGATE_CONSOLE_TIMEFORMAT=... : optional console time layout (default RFC3339Nano)
//
// An unknown level name leaves the gate at xgate.DefaultLevel.
func init() {
	seedGate(os.Getenv)
	envConfig = configFromEnv(os.Getenv)
	xgate.RegisterDefaultAdapterFactory(func(w io.Writer) xgate.Adapter {
		cfg := envConfig
		cfg.Writer = w
		return NewFromConfig(cfg)
	})
}

// seedGate applies XGATE_LEVEL (or XGATE_MIN_LEVEL) to the gate and reports
// whether it did.
func seedGate(getenv func(string) string) bool {
	s := getenv("XGATE_LEVEL")
	if s == "" {
		s = getenv("XGATE_MIN_LEVEL")
	}
	if s == "" {
		return false
	}
	lvl, err := xgate.ParseLevel(s)
	if err != nil {
		return false
	}
	xgate.SetLevel(lvl)
	return true
}

// configFromEnv builds the output settings. The floor stays at LevelDebug so
// only the gate filters the default logger.
func configFromEnv(getenv func(string) string) Config {
	skip, err := strconv.Atoi(getenv("XGATE_CALLER_SKIP"))
	if err != nil {
		skip = 5
	}
	return Config{
		MinLevel:          xgate.LevelDebug,
		Console:           getenv("XGATE_CONSOLE") == "1",
		ConsoleTimeFormat: getenv("XGATE_CONSOLE_TIMEFORMAT"),
		Caller:            getenv("XGATE_CALLER") == "1",
		CallerSkip:        skip,
	}
}
