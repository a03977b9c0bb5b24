package topology

import (
	"fmt"
	"iter"

	"lifegen/pkg/core"
)

// Point is a cell position on a rectangular board.
type Point struct {
	X, Y int
}

// mooreOffsets lists the eight Moore neighbors in row-major order.
var mooreOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rect is a bounded width×height grid with 8-neighbor Moore adjacency.
// Edges do not wrap.
type Rect struct {
	w, h int
}

// NewRect returns a rectangular topology. Both dimensions must be positive.
func NewRect(w, h int) (*Rect, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rect dimensions %dx%d must be positive", core.ErrOutOfRange, w, h)
	}
	return &Rect{w: w, h: h}, nil
}

// Width returns the number of columns.
func (r *Rect) Width() int { return r.w }

// Height returns the number of rows.
func (r *Rect) Height() int { return r.h }

// Len returns width*height.
func (r *Rect) Len() int { return r.w * r.h }

// Contains reports whether p lies on the board.
func (r *Rect) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.w && p.Y >= 0 && p.Y < r.h
}

// Index returns the row-major linear index for p. The caller must ensure p
// is on the board.
func (r *Rect) Index(p Point) int { return p.Y*r.w + p.X }

// PointAt is the inverse of Index.
func (r *Rect) PointAt(i int) Point { return Point{X: i % r.w, Y: i / r.w} }

// Nodes yields every cell in row-major order, matching Index.
func (r *Rect) Nodes() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < r.h; y++ {
			for x := 0; x < r.w; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Neighbors returns the up to eight Moore neighbors of p.
func (r *Rect) Neighbors(p Point) ([]Point, error) {
	it, err := r.NeighborIter(p)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, len(mooreOffsets))
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		out = append(out, n)
	}
	return out, nil
}

// NeighborIter returns a stack-allocated iterator over the neighbors of p.
func (r *Rect) NeighborIter(p Point) (MooreIter, error) {
	if !r.Contains(p) {
		return MooreIter{}, fmt.Errorf("%w: point (%d,%d) outside %dx%d board", core.ErrOutOfRange, p.X, p.Y, r.w, r.h)
	}
	return MooreIter{center: p, w: r.w, h: r.h}, nil
}

// MooreIter walks the in-bounds Moore neighbors of a single cell without
// allocating. The zero value yields nothing.
type MooreIter struct {
	center Point
	w, h   int
	i      int
}

// Next returns the next neighbor, or false once exhausted.
func (it *MooreIter) Next() (Point, bool) {
	for it.i < len(mooreOffsets) {
		off := mooreOffsets[it.i]
		it.i++
		x, y := it.center.X+off.X, it.center.Y+off.Y
		if x < 0 || x >= it.w || y < 0 || y >= it.h {
			continue
		}
		return Point{X: x, Y: y}, true
	}
	return Point{}, false
}
