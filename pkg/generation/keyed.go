package generation

import (
	"fmt"
	"maps"

	"lifegen/pkg/core"
	"lifegen/pkg/topology"
)

// Keyed maps positions to arbitrary states. Positions without an entry hold
// the default state.
type Keyed[P comparable, S any] struct {
	topo   topology.Topology[P]
	states map[P]S
	def    S
}

// NewKeyed copies states into a new generation with def as the background.
func NewKeyed[P comparable, S any](topo topology.Topology[P], states map[P]S, def S) (*Keyed[P, S], error) {
	if topo == nil {
		return nil, fmt.Errorf("%w: nil topology", core.ErrInvalidArgument)
	}
	if states == nil {
		return nil, fmt.Errorf("%w: nil state map", core.ErrInvalidArgument)
	}
	for p := range states {
		if !topo.Contains(p) {
			return nil, fmt.Errorf("%w: keyed position %v outside topology", core.ErrOutOfRange, p)
		}
	}
	return &Keyed[P, S]{topo: topo, states: maps.Clone(states), def: def}, nil
}

// At returns the state of p.
func (k *Keyed[P, S]) At(p P) (S, error) {
	if !k.topo.Contains(p) {
		var zero S
		return zero, fmt.Errorf("%w: position %v outside topology", core.ErrOutOfRange, p)
	}
	if s, ok := k.states[p]; ok {
		return s, nil
	}
	return k.def, nil
}

// Default returns the background state.
func (k *Keyed[P, S]) Default() S { return k.def }

// Len returns the number of explicitly stored positions.
func (k *Keyed[P, S]) Len() int { return len(k.states) }

// Release is a no-op; Keyed owns no pooled memory.
func (k *Keyed[P, S]) Release() {}
