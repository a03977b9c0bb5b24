package generation

import (
	"fmt"
	"iter"

	"lifegen/pkg/core"
	"lifegen/pkg/topology"
)

// Sparse is a binary generation stored as the set of alive positions.
type Sparse[P comparable] struct {
	topo  topology.Topology[P]
	alive map[P]struct{}
}

// NewSparse copies the alive positions into a new generation. Every
// position must belong to topo.
func NewSparse[P comparable](topo topology.Topology[P], alive iter.Seq[P]) (*Sparse[P], error) {
	if topo == nil {
		return nil, fmt.Errorf("%w: nil topology", core.ErrInvalidArgument)
	}
	if alive == nil {
		return nil, fmt.Errorf("%w: nil alive sequence", core.ErrInvalidArgument)
	}
	set := map[P]struct{}{}
	for p := range alive {
		if !topo.Contains(p) {
			return nil, fmt.Errorf("%w: alive position %v outside topology", core.ErrOutOfRange, p)
		}
		set[p] = struct{}{}
	}
	return &Sparse[P]{topo: topo, alive: set}, nil
}

// At returns whether p is alive.
func (s *Sparse[P]) At(p P) (bool, error) {
	if !s.topo.Contains(p) {
		return false, fmt.Errorf("%w: position %v outside topology", core.ErrOutOfRange, p)
	}
	_, ok := s.alive[p]
	return ok, nil
}

// Has reports membership without validating p against the topology.
func (s *Sparse[P]) Has(p P) bool {
	_, ok := s.alive[p]
	return ok
}

// Len returns the number of alive positions.
func (s *Sparse[P]) Len() int { return len(s.alive) }

// Alive yields the alive positions in topology node order.
func (s *Sparse[P]) Alive() iter.Seq[P] {
	return func(yield func(P) bool) {
		if len(s.alive) == 0 {
			return
		}
		for n := range s.topo.Nodes() {
			if _, ok := s.alive[n]; !ok {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Release is a no-op; Sparse owns no pooled memory.
func (s *Sparse[P]) Release() {}
