package generation

import (
	"fmt"
	"iter"

	"lifegen/pkg/core"
	"lifegen/pkg/topology"
)

const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// DenseBuilder fills a pooled row-major buffer for a rectangular board.
// Build freezes the buffer into a Dense generation and hands it the pool
// lease; Release returns the buffer if Build never happened. Callers should
// always defer Release.
type DenseBuilder struct {
	rect  *topology.Rect
	pool  *BufferPool
	buf   []uint8
	built bool
}

// NewDenseBuilder rents a width*height buffer from pool (DefaultPool when
// nil). The buffer contents are unspecified until Clear or a full write.
func NewDenseBuilder(pool *BufferPool, rect *topology.Rect) (*DenseBuilder, error) {
	if rect == nil {
		return nil, fmt.Errorf("%w: nil rect topology", core.ErrInvalidArgument)
	}
	if pool == nil {
		pool = DefaultPool
	}
	buf, err := pool.Rent(rect.Len())
	if err != nil {
		return nil, err
	}
	return &DenseBuilder{rect: rect, pool: pool, buf: buf}, nil
}

func (b *DenseBuilder) usable() error {
	if b.built {
		return fmt.Errorf("%w: dense builder already built", core.ErrInvalidOperation)
	}
	if b.buf == nil {
		return fmt.Errorf("%w: dense builder released", core.ErrInvalidOperation)
	}
	return nil
}

// Clear marks every cell dead.
func (b *DenseBuilder) Clear() error {
	if err := b.usable(); err != nil {
		return err
	}
	clear(b.buf)
	return nil
}

// Set writes the state of p.
func (b *DenseBuilder) Set(p topology.Point, alive bool) error {
	if err := b.usable(); err != nil {
		return err
	}
	if !b.rect.Contains(p) {
		return fmt.Errorf("%w: point (%d,%d) outside %dx%d board", core.ErrOutOfRange, p.X, p.Y, b.rect.Width(), b.rect.Height())
	}
	b.SetIndex(b.rect.Index(p), alive)
	return nil
}

// SetIndex writes the cell at linear index i without validation. Writes to
// distinct indices may run concurrently. Calling it on a built or released
// builder panics.
func (b *DenseBuilder) SetIndex(i int, alive bool) {
	if alive {
		b.buf[i] = cellAlive
		return
	}
	b.buf[i] = cellDead
}

// At reads back the state of p.
func (b *DenseBuilder) At(p topology.Point) (bool, error) {
	if err := b.usable(); err != nil {
		return false, err
	}
	if !b.rect.Contains(p) {
		return false, fmt.Errorf("%w: point (%d,%d) outside %dx%d board", core.ErrOutOfRange, p.X, p.Y, b.rect.Width(), b.rect.Height())
	}
	return b.buf[b.rect.Index(p)] == cellAlive, nil
}

// Build freezes the builder. The returned generation owns the buffer; the
// builder is spent and only Release remains valid on it.
func (b *DenseBuilder) Build() (*Dense, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	d := &Dense{rect: b.rect, pool: b.pool, buf: b.buf}
	b.buf = nil
	b.built = true
	return d, nil
}

// Release returns the buffer to the pool unless Build already transferred
// it. Safe to call any number of times.
func (b *DenseBuilder) Release() {
	if b.buf == nil {
		return
	}
	buf := b.buf
	b.buf = nil
	_ = b.pool.Return(buf)
}

// NewDenseFromAlive builds a dense generation in which exactly the given
// points are alive.
func NewDenseFromAlive(pool *BufferPool, rect *topology.Rect, alive iter.Seq[topology.Point]) (*Dense, error) {
	if alive == nil {
		return nil, fmt.Errorf("%w: nil alive sequence", core.ErrInvalidArgument)
	}
	b, err := NewDenseBuilder(pool, rect)
	if err != nil {
		return nil, err
	}
	defer b.Release()

	if err := b.Clear(); err != nil {
		return nil, err
	}
	for p := range alive {
		if err := b.Set(p, true); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Dense is a frozen rectangular generation backed by a pooled buffer.
type Dense struct {
	rect *topology.Rect
	pool *BufferPool
	buf  []uint8
}

// Topology returns the board the generation covers.
func (d *Dense) Topology() *topology.Rect { return d.rect }

// At returns whether p is alive.
func (d *Dense) At(p topology.Point) (bool, error) {
	if d.buf == nil {
		return false, fmt.Errorf("%w: dense generation released", core.ErrInvalidOperation)
	}
	if !d.rect.Contains(p) {
		return false, fmt.Errorf("%w: point (%d,%d) outside %dx%d board", core.ErrOutOfRange, p.X, p.Y, d.rect.Width(), d.rect.Height())
	}
	return d.buf[d.rect.Index(p)] == cellAlive, nil
}

// AtIndex reads the cell at linear index i without validation.
func (d *Dense) AtIndex(i int) bool { return d.buf[i] == cellAlive }

// AliveCount returns the number of alive cells.
func (d *Dense) AliveCount() int {
	n := 0
	for _, c := range d.buf {
		if c == cellAlive {
			n++
		}
	}
	return n
}

// Release returns the buffer to its pool. Repeated calls are no-ops.
func (d *Dense) Release() {
	if d.buf == nil {
		return
	}
	buf := d.buf
	d.buf = nil
	_ = d.pool.Return(buf)
}
