// Package generation holds immutable per-tick board snapshots.
//
// Three storage strategies are provided:
//   - Dense: a flat row-major byte buffer rented from a BufferPool, built
//     through a DenseBuilder. Used for rectangular boards.
//   - Sparse: a set of alive positions; everything else is dead. Used for
//     hex boards where patterns are typically sparse.
//   - Keyed: a copied position→state table plus a default state. Used for
//     arbitrary topology/state combinations.
//
// A generation must be released once it is no longer needed. Release is
// idempotent; for Sparse and Keyed it is a no-op.
package generation

import (
	"iter"
)

// Generation is a read-only mapping from every topology node to its state.
type Generation[P comparable, S any] interface {
	// At returns the state of node. It fails with core.ErrOutOfRange for a
	// node outside the paired topology.
	At(node P) (S, error)
	// Release returns any pooled memory owned by the generation.
	Release()
}

// Equal reports whether a and b agree on every node in nodes.
func Equal[P, S comparable](nodes iter.Seq[P], a, b Generation[P, S]) (bool, error) {
	for n := range nodes {
		sa, err := a.At(n)
		if err != nil {
			return false, err
		}
		sb, err := b.At(n)
		if err != nil {
			return false, err
		}
		if sa != sb {
			return false, nil
		}
	}
	return true, nil
}

// Count returns how many nodes of g hold state.
func Count[P, S comparable](nodes iter.Seq[P], g Generation[P, S], state S) (int, error) {
	n := 0
	for node := range nodes {
		s, err := g.At(node)
		if err != nil {
			return 0, err
		}
		if s == state {
			n++
		}
	}
	return n, nil
}

// AliveSet collects the alive nodes of a binary generation in node order.
func AliveSet[P comparable](nodes iter.Seq[P], g Generation[P, bool]) ([]P, error) {
	var out []P
	for n := range nodes {
		alive, err := g.At(n)
		if err != nil {
			return nil, err
		}
		if alive {
			out = append(out, n)
		}
	}
	return out, nil
}
