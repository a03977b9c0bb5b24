package world

import (
	"fmt"
	"slices"

	"lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/topology"
)

// HexWorld ticks binary count rules on a hex board into sparse generations.
type HexWorld struct {
	hex   *topology.Hex
	rules rules.CountRules
}

// NewHex pairs hex with r.
func NewHex(hex *topology.Hex, r rules.CountRules) (*HexWorld, error) {
	if hex == nil {
		return nil, fmt.Errorf("%w: nil hex topology", core.ErrInvalidArgument)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil rules", core.ErrInvalidArgument)
	}
	return &HexWorld{hex: hex, rules: r}, nil
}

// Topology returns the board.
func (w *HexWorld) Topology() *topology.Hex { return w.hex }

// Rules returns the rule set.
func (w *HexWorld) Rules() rules.CountRules { return w.rules }

// Tick implements Ticker.
func (w *HexWorld) Tick(current generation.Generation[topology.HexCoord, bool]) (generation.Generation[topology.HexCoord, bool], error) {
	s, err := w.TickSparse(current)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// TickSparse computes the next generation as an alive set.
func (w *HexWorld) TickSparse(current generation.Generation[topology.HexCoord, bool]) (*generation.Sparse[topology.HexCoord], error) {
	if current == nil {
		return nil, fmt.Errorf("%w: nil current generation", core.ErrInvalidArgument)
	}
	at := current.At
	if s, ok := current.(*generation.Sparse[topology.HexCoord]); ok {
		at = func(c topology.HexCoord) (bool, error) { return s.Has(c), nil }
	}

	var alive []topology.HexCoord
	for c := range w.hex.Nodes() {
		cur, err := at(c)
		if err != nil {
			return nil, err
		}
		it, err := w.hex.NeighborIter(c)
		if err != nil {
			return nil, err
		}
		count := 0
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			a, err := at(n)
			if err != nil {
				return nil, err
			}
			if a {
				count++
			}
		}
		if w.rules.NextFromCount(cur, count) {
			alive = append(alive, c)
		}
	}
	return generation.NewSparse[topology.HexCoord](w.hex, slices.Values(alive))
}
