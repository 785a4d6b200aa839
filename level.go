package xgate

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level mirrors slog numeric semantics, bounded by Debug (-4) and Fatal (12).
// Lower values are more verbose.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

// DefaultLevel is the gate threshold at process start: the most verbose level,
// so nothing is filtered until the threshold is raised.
const DefaultLevel = LevelDebug

func (l Level) String() string {
	str := func(base string, off Level) string {
		switch {
		case off == 0:
			return base
		case off > 0:
			return base + "+" + strconv.Itoa(int(off))
		default:
			return base + strconv.Itoa(int(off))
		}
	}
	switch {
	case l < LevelInfo:
		return str("DEBUG", l-LevelDebug)
	case l < LevelWarn:
		return str("INFO", l-LevelInfo)
	case l < LevelError:
		return str("WARN", l-LevelWarn)
	case l < LevelFatal:
		return str("ERROR", l-LevelError)
	default:
		return str("FATAL", l-LevelFatal)
	}
}

// Rank places l on the five named steps, 0 (DEBUG) to 4 (FATAL). A value
// between two names takes the higher one, so nothing is ever shown at a
// lower severity than it was logged with. Adapters index their backend
// levels with it.
func (l Level) Rank() int {
	switch {
	case l <= LevelDebug:
		return 0
	case l <= LevelInfo:
		return 1
	case l <= LevelWarn:
		return 2
	case l <= LevelError:
		return 3
	default:
		return 4
	}
}

// ParseLevel maps a level name (case-insensitive) to its Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return DefaultLevel, errors.Wrapf(ErrUnknownLevel, "parse %q", s)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
