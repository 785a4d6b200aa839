package xgate

import "github.com/trickstertwo/xclock"

// Config is everything a Logger is built from.
type Config struct {
	Adapter Adapter

	// MinLevel is a per-logger floor applied on top of the global gate and
	// pushed into adapters implementing SetMinLevel. LevelDebug, the
	// Builder default, leaves filtering to the gate alone.
	MinLevel Level

	// Fields are bound once at build time, as if passed to Logger.With.
	Fields []Field

	Observers []Observer
	Clock     xclock.Clock // optional; nil means xclock.Now
}

// Build checks c and constructs the Logger. The adapter is configured with
// the floor, never with the gate: the gate moves at runtime and the Logger
// re-reads it on every entry.
func (c Config) Build() (*Logger, error) {
	if c.Adapter == nil {
		return nil, ErrNoAdapter
	}
	if ls, ok := c.Adapter.(adapterLevelSetter); ok {
		ls.SetMinLevel(c.MinLevel)
	}
	return newLogger(c), nil
}

// Builder is the fluent front end for Config.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelDebug}}
}

func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.cfg.Adapter = a
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithFields(fs ...Field) *Builder {
	b.cfg.Fields = append(b.cfg.Fields, fs...)
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

func (b *Builder) Build() (*Logger, error) { return b.cfg.Build() }
