package xgate

// Package-level shortcuts onto the global logger set with SetGlobal.
// Each panics, via L, when no global logger is installed.
//
//	xgate.Info().Str("k", "v").Msg("hello")
//	xgate.Logf(xgate.LevelWarn, "disk %d%%", 91)

func Debug() *Event { return L().Debug() }
func Info() *Event  { return L().Info() }
func Warn() *Event  { return L().Warn() }
func Error() *Event { return L().Error() }
func Fatal() *Event { return L().Fatal() }

// Enabled reports whether the global logger would emit at level.
func Enabled(level Level) bool { return L().Enabled(level) }

// Logf formats and emits through the global logger. See Logger.Logf.
func Logf(level Level, format string, args ...any) int32 {
	return L().Logf(level, format, args...)
}

// Printf returns a PrintfFunc bound to the global logger at the time of the
// call. Install a new global logger and earlier PrintfFuncs keep the old one.
func Printf(level Level) PrintfFunc { return L().Printf(level) }
