package xgate

import "github.com/pkg/errors"

var (
	// ErrNoAdapter is returned by Builder.Build when no Adapter was set.
	ErrNoAdapter = errors.New("xgate: no adapter configured")

	// ErrUnknownLevel is wrapped by ParseLevel for unrecognized names.
	ErrUnknownLevel = errors.New("xgate: unknown level")
)
