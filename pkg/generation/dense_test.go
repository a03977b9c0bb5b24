package generation

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegen/pkg/core"
	"lifegen/pkg/topology"
)

func newRect(t *testing.T, w, h int) *topology.Rect {
	t.Helper()
	r, err := topology.NewRect(w, h)
	require.NoError(t, err)
	return r
}

func TestDenseBuilder_RoundTrip(t *testing.T) {
	pool := NewBufferPool(WithPoison())
	rect := newRect(t, 6, 4)

	b, err := NewDenseBuilder(pool, rect)
	require.NoError(t, err)
	defer b.Release()
	require.NoError(t, b.Clear())

	written := map[topology.Point]bool{}
	for p := range rect.Nodes() {
		alive := (p.X+2*p.Y)%3 == 0
		if p.X == 5 {
			continue // left unwritten after Clear
		}
		require.NoError(t, b.Set(p, alive))
		written[p] = alive
	}

	d, err := b.Build()
	require.NoError(t, err)
	defer d.Release()

	for p := range rect.Nodes() {
		got, err := d.At(p)
		require.NoError(t, err)
		assert.Equal(t, written[p], got, "point %v", p)
	}
}

func TestDenseBuilder_UseAfterBuild_InvalidOperation(t *testing.T) {
	pool := NewBufferPool()
	b, err := NewDenseBuilder(pool, newRect(t, 2, 2))
	require.NoError(t, err)
	defer b.Release()

	d, err := b.Build()
	require.NoError(t, err)
	defer d.Release()

	assert.ErrorIs(t, b.Set(topology.Point{}, true), core.ErrInvalidOperation)
	_, err = b.At(topology.Point{})
	assert.ErrorIs(t, err, core.ErrInvalidOperation)
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrInvalidOperation)
	assert.ErrorIs(t, b.Clear(), core.ErrInvalidOperation)
	assert.Panics(t, func() { b.SetIndex(0, true) })
}

func TestDenseBuilder_SetOutsideBoard_OutOfRange(t *testing.T) {
	b, err := NewDenseBuilder(NewBufferPool(), newRect(t, 2, 2))
	require.NoError(t, err)
	defer b.Release()

	assert.ErrorIs(t, b.Set(topology.Point{X: 2, Y: 0}, true), core.ErrOutOfRange)
	_, err = b.At(topology.Point{X: 0, Y: -1})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestDenseBuilder_ReleaseWithoutBuild_ReturnsBufferOnce(t *testing.T) {
	pool := NewBufferPool(WithPoison())
	b, err := NewDenseBuilder(pool, newRect(t, 3, 3))
	require.NoError(t, err)

	b.Release()
	b.Release()

	assert.Equal(t, PoolStats{Rented: 1, Returned: 1}, pool.Stats())
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrInvalidOperation)
}

func TestDense_Release_Idempotent(t *testing.T) {
	pool := NewBufferPool(WithPoison())
	b, err := NewDenseBuilder(pool, newRect(t, 3, 3))
	require.NoError(t, err)
	d, err := b.Build()
	require.NoError(t, err)

	b.Release() // spent builder: nothing to return
	d.Release()
	d.Release()

	assert.Equal(t, PoolStats{Rented: 1, Returned: 1}, pool.Stats())
	_, err = d.At(topology.Point{})
	assert.ErrorIs(t, err, core.ErrInvalidOperation)
}

func TestNewDenseFromAlive(t *testing.T) {
	pool := NewBufferPool(WithPoison())
	rect := newRect(t, 4, 4)
	seed := []topology.Point{{1, 1}, {2, 1}, {1, 2}}

	d, err := NewDenseFromAlive(pool, rect, slices.Values(seed))
	require.NoError(t, err)
	defer d.Release()

	alive, err := AliveSet(rect.Nodes(), d)
	require.NoError(t, err)
	assert.Equal(t, seed, alive)
	assert.Equal(t, 3, d.AliveCount())

	_, err = d.At(topology.Point{X: 4, Y: 0})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestNewDenseFromAlive_OutOfBoundsSeed_ReturnsBuffer(t *testing.T) {
	pool := NewBufferPool()
	rect := newRect(t, 2, 2)

	_, err := NewDenseFromAlive(pool, rect, slices.Values([]topology.Point{{0, 0}, {5, 5}}))
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.Zero(t, pool.Stats().Outstanding)

	_, err = NewDenseFromAlive(pool, rect, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
