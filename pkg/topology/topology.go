// Package topology defines the spatial structures a cellular automaton runs
// on: which positions exist and how they connect. Topologies hold no cell
// state and are immutable once constructed.
package topology

import "iter"

// Topology enumerates the valid positions of a board and their neighbors.
type Topology[P comparable] interface {
	// Nodes yields every valid position in a fixed deterministic order.
	// The sequence is finite and may be ranged over any number of times.
	Nodes() iter.Seq[P]
	// Neighbors returns the in-bounds neighbors of node. It fails with
	// core.ErrOutOfRange when node is not part of the topology.
	Neighbors(node P) ([]P, error)
	// Contains reports whether node is a valid position.
	Contains(node P) bool
	// Len returns the number of valid positions.
	Len() int
}
