// Package timeline owns the sequence of generations produced by a world.
//
// A Timeline holds exactly one live generation. Step replaces it with its
// successor and releases the old one, so pooled memory in use never exceeds
// a single board regardless of how many steps run. Close releases the held
// generation; afterwards every call fails with core.ErrInvalidOperation.
package timeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/world"
)

// Timeline advances a world one generation at a time.
type Timeline[P comparable, S any] struct {
	world   world.Ticker[P, S]
	current generation.Generation[P, S]
	turn    int
	closed  bool
}

// New takes ownership of initial.
func New[P comparable, S any](w world.Ticker[P, S], initial generation.Generation[P, S]) (*Timeline[P, S], error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil world", core.ErrInvalidArgument)
	}
	if initial == nil {
		return nil, fmt.Errorf("%w: nil initial generation", core.ErrInvalidArgument)
	}
	return &Timeline[P, S]{world: w, current: initial}, nil
}

func (t *Timeline[P, S]) active() error {
	if t.closed {
		return fmt.Errorf("%w: timeline closed", core.ErrInvalidOperation)
	}
	return nil
}

// Current returns the live generation. It stays valid until the next Step
// or Close.
func (t *Timeline[P, S]) Current() (generation.Generation[P, S], error) {
	if err := t.active(); err != nil {
		return nil, err
	}
	return t.current, nil
}

// Turn returns the number of completed steps.
func (t *Timeline[P, S]) Turn() int { return t.turn }

// Step computes the next generation and releases the current one. On
// failure the current generation is kept.
func (t *Timeline[P, S]) Step() error {
	if err := t.active(); err != nil {
		return err
	}
	next, err := t.world.Tick(t.current)
	if err != nil {
		return fmt.Errorf("turn %d: %w", t.turn+1, err)
	}
	prev := t.current
	t.current = next
	t.turn++
	prev.Release()
	logrus.Debugf("timeline: advanced to turn %d", t.turn)
	return nil
}

// StepN runs Step count times, stopping at the first error. A non-positive
// count does nothing.
func (t *Timeline[P, S]) StepN(count int) error {
	if err := t.active(); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := t.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the live generation. Repeated calls are no-ops.
func (t *Timeline[P, S]) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.current.Release()
	t.current = nil
	logrus.Debugf("timeline: closed at turn %d", t.turn)
}
