// Package visit runs per-child initialization over a widget tree owned by
// someone else. Widgets are only seen through the Widget and Parent
// interfaces; rendering, layout and events stay with the toolkit.
package visit

import (
	"github.com/pkg/errors"

	"github.com/trickstertwo/xgate"
)

// Widget is the one thing visit needs from a toolkit widget.
type Widget interface {
	Name() string
}

// Parent exposes the direct children of a container widget.
type Parent interface {
	Children() []Widget
}

// Hook initializes a single child.
type Hook func(w Widget) error

// InitChild is the default Hook. Setup keyed on w.Name() belongs here; no
// widget currently needs any, so every child succeeds.
func InitChild(w Widget) error { return nil }

// InitChildren calls hook once for every direct child of p, in order, and
// returns how many children were visited. A nil hook means InitChild and a
// nil trace means xgate.Discard. A nil p has no children. The first hook
// error stops the walk and is returned wrapped with the child's name.
func InitChildren(p Parent, hook Hook, trace xgate.PrintfFunc) (int, error) {
	if p == nil {
		return 0, nil
	}
	if hook == nil {
		hook = InitChild
	}
	if trace == nil {
		trace = xgate.Discard
	}
	children := p.Children()
	for i, c := range children {
		trace("visit: init child %d/%d name=%s", i+1, len(children), c.Name())
		if err := hook(c); err != nil {
			return i + 1, errors.Wrapf(err, "init child %q", c.Name())
		}
	}
	return len(children), nil
}
