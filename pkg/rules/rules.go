// Package rules holds cell state-transition logic. Rules are stateless and
// deterministic; they never mutate their inputs.
package rules

// Rules computes the next state of a cell from its current state and the
// states of its neighbors.
type Rules[S any] interface {
	// Next returns the next state. A nil neighbors slice fails with
	// core.ErrInvalidArgument; an empty one means the cell has no neighbors.
	Next(current S, neighbors []S) (S, error)
	// Default is the background state of unaddressed cells.
	Default() S
}

// CountRules are binary rules that depend only on the alive-neighbor count.
// NextFromCount lets callers that already walked the neighbors skip
// materializing a neighbor slice.
type CountRules interface {
	Rules[bool]
	NextFromCount(alive bool, count int) bool
	Name() string
}
