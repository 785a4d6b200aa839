package xgate

import "time"

// Adapter is the logging backend Strategy (zerolog, zap, slog).
// Log receives the single authoritative timestamp 'at' from the Logger so the
// adapter and observers agree on it. Log is only called for entries that
// already passed the gate.
type Adapter interface {
	Log(level Level, msg string, at time.Time, fields []Field)
	With(fields []Field) Adapter // return a child adapter with bound fields (do not mutate receiver)
}

// adapterLevelSetter is an optional interface adapters can implement
// to receive the logger's floor from Builder/Config.
type adapterLevelSetter interface {
	SetMinLevel(Level)
}
