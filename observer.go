package xgate

import "time"

// Entry is sent to Observers when an event passes the gate and is emitted.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
	Fields  []Field // bound + event fields; a fresh slice per emit, safe to hold
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
