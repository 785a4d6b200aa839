package xgate

import (
	"io"
	"os"
)

// defaultAdapterFactory is set by an adapter package (e.g., adapter/zerolog)
// in its init() to avoid import cycles. Default() uses this to build a logger.
var defaultAdapterFactory func(w io.Writer) Adapter

// RegisterDefaultAdapterFactory registers the constructor used by xgate.Default().
// Adapters should call this from init() to avoid import cycles.
// Example (in adapter/zerolog):
//
//	func init() {
//	  xgate.RegisterDefaultAdapterFactory(func(w io.Writer) xgate.Adapter {
//	    return New(zerolog.New(w))
//	  })
//	}
func RegisterDefaultAdapterFactory(f func(io.Writer) Adapter) {
	defaultAdapterFactory = f
}

// Default creates a logger using the registered adapter factory, writing to
// os.Stdout with no floor of its own, so only the gate filters it.
// E.g. side import github.com/trickstertwo/xgate/adapter/zerolog to
// auto-register the zerolog adapter. Panics if no factory is registered.
func Default() *Logger {
	if defaultAdapterFactory == nil {
		panic("xgate: no default adapter registered. Import adapter/zerolog or call xgate.RegisterDefaultAdapterFactory")
	}
	l, err := Config{Adapter: defaultAdapterFactory(os.Stdout), MinLevel: LevelDebug}.Build()
	if err != nil {
		panic("xgate: default adapter factory returned nil")
	}
	return l
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseAdapter sets the given adapter as the global logger with the provided floor.
// It builds the logger, sets it as global, and returns it.
func UseAdapter(a Adapter, min Level, observers ...Observer) *Logger {
	b := NewBuilder().
		WithAdapter(a).
		WithMinLevel(min)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		// Build only fails on a nil adapter: a programming error.
		panic(err)
	}
	SetGlobal(l)
	return l
}
