package topology

import (
	"fmt"
	"iter"

	"lifegen/pkg/core"
)

// HexCoord is a position on a hex board in axial coordinates. The third
// cube coordinate is derived as S = -Q - R.
type HexCoord struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (c HexCoord) S() int { return -c.Q - c.R }

// hexDirections are the six axial neighbor offsets: E, W, NE, NW, SE, SW.
var hexDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: -1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
}

// HexDistance returns the hex distance between a and b.
func HexDistance(a, b HexCoord) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S()-b.S())) / 2
}

// HexCellCount returns the closed-form cell count 3r(r+1)+1 of a hex board.
func HexCellCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

// Hex is a hexagon-shaped board of the given radius centered on (0,0).
type Hex struct {
	radius int
}

// NewHex returns a hex topology. The radius must be non-negative.
func NewHex(radius int) (*Hex, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: hex radius %d must be non-negative", core.ErrOutOfRange, radius)
	}
	return &Hex{radius: radius}, nil
}

// Radius returns the board radius.
func (h *Hex) Radius() int { return h.radius }

// Len returns the number of cells on the board.
func (h *Hex) Len() int { return HexCellCount(h.radius) }

// Contains reports whether c is within the board radius.
func (h *Hex) Contains(c HexCoord) bool { return IsWithinRadius(c, h.radius) }

// IsWithinRadius reports whether max(|q|,|r|,|s|) <= radius.
func IsWithinRadius(c HexCoord, radius int) bool {
	return abs(c.Q) <= radius && abs(c.R) <= radius && abs(c.S()) <= radius
}

// Nodes yields every cell row by row (ascending R), ascending Q within a row.
func (h *Hex) Nodes() iter.Seq[HexCoord] {
	return func(yield func(HexCoord) bool) {
		n := h.radius
		for r := -n; r <= n; r++ {
			qMin := max(-n, -r-n)
			qMax := min(n, -r+n)
			for q := qMin; q <= qMax; q++ {
				if !yield(HexCoord{Q: q, R: r}) {
					return
				}
			}
		}
	}
}

// Neighbors returns the up to six neighbors of c that lie on the board.
func (h *Hex) Neighbors(c HexCoord) ([]HexCoord, error) {
	it, err := h.NeighborIter(c)
	if err != nil {
		return nil, err
	}
	out := make([]HexCoord, 0, len(hexDirections))
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		out = append(out, n)
	}
	return out, nil
}

// NeighborIter returns a stack-allocated iterator over the neighbors of c.
func (h *Hex) NeighborIter(c HexCoord) (HexIter, error) {
	if !h.Contains(c) {
		return HexIter{}, fmt.Errorf("%w: hex (%d,%d) outside radius %d", core.ErrOutOfRange, c.Q, c.R, h.radius)
	}
	return HexIter{center: c, radius: h.radius}, nil
}

// HexIter walks the on-board neighbors of one hex without allocating. The
// zero value yields nothing.
type HexIter struct {
	center HexCoord
	radius int
	i      int
}

// Next returns the next neighbor, or false once exhausted.
func (it *HexIter) Next() (HexCoord, bool) {
	for it.i < len(hexDirections) {
		d := hexDirections[it.i]
		it.i++
		n := HexCoord{Q: it.center.Q + d.Q, R: it.center.R + d.R}
		if IsWithinRadius(n, it.radius) {
			return n, true
		}
	}
	return HexCoord{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
