package xgate

import "sync/atomic"

// The gate is the process-wide severity threshold every Logger consults
// before building or emitting a message. It is set to DefaultLevel at package
// initialization and is only ever changed through SetLevel.
//
// Reads and writes are atomic: concurrent callers never observe a torn value,
// and the most recent SetLevel in program order wins on a single goroutine.
// Ordering between concurrent writers is unspecified.
var gate atomic.Int64

func init() { gate.Store(int64(DefaultLevel)) }

// SetLevel replaces the global threshold.
func SetLevel(level Level) { gate.Store(int64(level)) }

// GetLevel returns the global threshold.
func GetLevel() Level { return Level(gate.Load()) }

// PrintfFunc is the calling convention shared by printf-style sinks.
// The return value is the number of bytes emitted.
type PrintfFunc func(format string, args ...any) int32

// Discard is a PrintfFunc that formats nothing, writes nothing and returns 0.
// Use it wherever a sink is required but output is not wanted.
//
// Go evaluates call arguments before the call, so Discard cannot skip their
// evaluation; guard expensive arguments with Logger.Enabled instead.
func Discard(format string, args ...any) int32 { return 0 }

var _ PrintfFunc = Discard
