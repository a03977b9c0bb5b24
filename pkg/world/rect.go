package world

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/topology"
)

// RectWorld ticks binary count rules on a rectangular board into dense
// pooled generations.
type RectWorld struct {
	rect    *topology.Rect
	rules   rules.CountRules
	pool    *generation.BufferPool
	workers int
}

// RectOption configures a RectWorld.
type RectOption func(*RectWorld)

// WithPool sets the pool next generations are rented from.
func WithPool(p *generation.BufferPool) RectOption {
	return func(w *RectWorld) { w.pool = p }
}

// WithWorkers splits each tick into n row bands evaluated concurrently.
// Values below 2 keep the tick on the calling goroutine.
func WithWorkers(n int) RectOption {
	return func(w *RectWorld) { w.workers = n }
}

// NewRect pairs rect with r.
func NewRect(rect *topology.Rect, r rules.CountRules, opts ...RectOption) (*RectWorld, error) {
	if rect == nil {
		return nil, fmt.Errorf("%w: nil rect topology", core.ErrInvalidArgument)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil rules", core.ErrInvalidArgument)
	}
	w := &RectWorld{rect: rect, rules: r, pool: generation.DefaultPool, workers: 1}
	for _, opt := range opts {
		opt(w)
	}
	if w.pool == nil {
		w.pool = generation.DefaultPool
	}
	return w, nil
}

// Topology returns the board.
func (w *RectWorld) Topology() *topology.Rect { return w.rect }

// Rules returns the rule set.
func (w *RectWorld) Rules() rules.CountRules { return w.rules }

// Tick implements Ticker.
func (w *RectWorld) Tick(current generation.Generation[topology.Point, bool]) (generation.Generation[topology.Point, bool], error) {
	d, err := w.TickDense(current)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// TickDense computes the next generation. The builder's buffer goes back to
// the pool if any cell fails to evaluate.
func (w *RectWorld) TickDense(current generation.Generation[topology.Point, bool]) (*generation.Dense, error) {
	if current == nil {
		return nil, fmt.Errorf("%w: nil current generation", core.ErrInvalidArgument)
	}
	b, err := generation.NewDenseBuilder(w.pool, w.rect)
	if err != nil {
		return nil, err
	}
	defer b.Release()

	src := w.source(current)
	h := w.rect.Height()
	workers := min(w.workers, h)
	if workers < 2 {
		if err := w.band(src, b, 0, h); err != nil {
			return nil, err
		}
		return b.Build()
	}

	var g errgroup.Group
	rows := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += rows {
		y1 := min(y0+rows, h)
		g.Go(func() error { return w.band(src, b, y0, y1) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b.Build()
}

// band evaluates rows [y0, y1). Bands write disjoint index ranges.
func (w *RectWorld) band(src cellSource, b *generation.DenseBuilder, y0, y1 int) error {
	width := w.rect.Width()
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			p := topology.Point{X: x, Y: y}
			alive, err := src.at(p)
			if err != nil {
				return err
			}
			it, err := w.rect.NeighborIter(p)
			if err != nil {
				return err
			}
			count := 0
			for n, ok := it.Next(); ok; n, ok = it.Next() {
				a, err := src.at(n)
				if err != nil {
					return err
				}
				if a {
					count++
				}
			}
			b.SetIndex(y*width+x, w.rules.NextFromCount(alive, count))
		}
	}
	return nil
}

type cellSource interface {
	at(p topology.Point) (bool, error)
}

type denseSource struct {
	d    *generation.Dense
	rect *topology.Rect
}

func (s denseSource) at(p topology.Point) (bool, error) {
	return s.d.AtIndex(s.rect.Index(p)), nil
}

type genericSource struct {
	g generation.Generation[topology.Point, bool]
}

func (s genericSource) at(p topology.Point) (bool, error) { return s.g.At(p) }

// source picks direct buffer reads when current is a live dense generation
// of the same shape.
func (w *RectWorld) source(current generation.Generation[topology.Point, bool]) cellSource {
	d, ok := current.(*generation.Dense)
	if !ok {
		return genericSource{g: current}
	}
	r := d.Topology()
	if r.Width() != w.rect.Width() || r.Height() != w.rect.Height() {
		return genericSource{g: current}
	}
	if _, err := d.At(topology.Point{}); err != nil {
		return genericSource{g: current}
	}
	return denseSource{d: d, rect: w.rect}
}
