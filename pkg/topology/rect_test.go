package topology

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegen/pkg/core"
)

func TestNewRect_NonPositiveDimensions_OutOfRange(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewRect(dims[0], dims[1])
		assert.ErrorIs(t, err, core.ErrOutOfRange, "dims %v", dims)
	}
}

func TestRect_Nodes_RowMajorMatchesIndex(t *testing.T) {
	r, err := NewRect(4, 3)
	require.NoError(t, err)

	i := 0
	for p := range r.Nodes() {
		assert.Equal(t, i, r.Index(p))
		assert.Equal(t, p, r.PointAt(i))
		i++
	}
	assert.Equal(t, r.Len(), i)

	// restartable
	again := slices.Collect(r.Nodes())
	assert.Len(t, again, 12)
}

func TestRect_Neighbors_CountsByPosition(t *testing.T) {
	r, err := NewRect(5, 5)
	require.NoError(t, err)

	tests := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 3},
		{Point{4, 4}, 3},
		{Point{2, 0}, 5},
		{Point{0, 2}, 5},
		{Point{2, 2}, 8},
	}
	for _, tc := range tests {
		got, err := r.Neighbors(tc.p)
		require.NoError(t, err)
		assert.Len(t, got, tc.want, "point %v", tc.p)
		assert.NotContains(t, got, tc.p)
		for _, n := range got {
			assert.True(t, r.Contains(n))
		}
	}
}

func TestRect_Neighbors_OutsideBoard_OutOfRange(t *testing.T) {
	r, err := NewRect(3, 3)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {3, 0}, {0, 3}, {10, 10}} {
		got, err := r.Neighbors(p)
		assert.ErrorIs(t, err, core.ErrOutOfRange)
		assert.Nil(t, got)
	}
}

func TestMooreIter_MatchesNeighbors(t *testing.T) {
	r, err := NewRect(4, 4)
	require.NoError(t, err)

	for p := range r.Nodes() {
		want, err := r.Neighbors(p)
		require.NoError(t, err)
		it, err := r.NeighborIter(p)
		require.NoError(t, err)
		var got []Point
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			got = append(got, n)
		}
		assert.Equal(t, want, got)
	}
}

func TestMooreIter_ZeroValue_Empty(t *testing.T) {
	var it MooreIter
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestMooreIter_DoesNotAllocate(t *testing.T) {
	r, err := NewRect(16, 16)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		it, _ := r.NeighborIter(Point{X: 7, Y: 7})
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	})
	assert.Zero(t, allocs)
}
