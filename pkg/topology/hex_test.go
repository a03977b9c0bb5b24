package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegen/pkg/core"
)

func TestNewHex_NegativeRadius_OutOfRange(t *testing.T) {
	_, err := NewHex(-1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	h, err := NewHex(0)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
}

func TestHex_CellCount_MatchesExhaustiveEnumeration(t *testing.T) {
	for radius := 0; radius <= 12; radius++ {
		h, err := NewHex(radius)
		require.NoError(t, err)

		brute := 0
		for q := -radius; q <= radius; q++ {
			for r := -radius; r <= radius; r++ {
				if IsWithinRadius(HexCoord{Q: q, R: r}, radius) {
					brute++
				}
			}
		}

		seen := map[HexCoord]bool{}
		for c := range h.Nodes() {
			assert.False(t, seen[c], "duplicate node %v", c)
			seen[c] = true
		}

		assert.Equal(t, HexCellCount(radius), brute, "radius %d", radius)
		assert.Equal(t, brute, len(seen), "radius %d", radius)
		assert.Equal(t, brute, h.Len(), "radius %d", radius)
	}
}

func TestHex_Nodes_RowMajorOverAxialRows(t *testing.T) {
	h, err := NewHex(2)
	require.NoError(t, err)

	var prev *HexCoord
	for c := range h.Nodes() {
		if prev != nil {
			if c.R == prev.R {
				assert.Greater(t, c.Q, prev.Q)
			} else {
				assert.Equal(t, prev.R+1, c.R)
			}
		}
		cc := c
		prev = &cc
	}
}

func TestHex_Neighbors_RingProperty(t *testing.T) {
	for radius := 1; radius <= 6; radius++ {
		h, err := NewHex(radius)
		require.NoError(t, err)

		center, err := h.Neighbors(HexCoord{})
		require.NoError(t, err)
		assert.Len(t, center, 6)

		for c := range h.Nodes() {
			got, err := h.Neighbors(c)
			require.NoError(t, err)

			onRing := HexDistance(c, HexCoord{}) == radius
			want := 6
			if onRing {
				want = 4
				if c.Q == 0 || c.R == 0 || c.S() == 0 {
					want = 3
				}
			}
			assert.Len(t, got, want, "radius %d cell %v", radius, c)
		}
	}
}

func TestHex_Neighbors_OutsideBoard_OutOfRange(t *testing.T) {
	h, err := NewHex(2)
	require.NoError(t, err)

	got, err := h.Neighbors(HexCoord{Q: 3, R: 0})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.Nil(t, got)

	_, err = h.Neighbors(HexCoord{Q: 2, R: 1})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestHexIter_MatchesNeighbors(t *testing.T) {
	h, err := NewHex(3)
	require.NoError(t, err)

	for c := range h.Nodes() {
		want, err := h.Neighbors(c)
		require.NoError(t, err)
		it, err := h.NeighborIter(c)
		require.NoError(t, err)
		var got []HexCoord
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			got = append(got, n)
		}
		assert.Equal(t, want, got)
	}
}

func TestHexDistance(t *testing.T) {
	assert.Equal(t, 0, HexDistance(HexCoord{}, HexCoord{}))
	assert.Equal(t, 1, HexDistance(HexCoord{}, HexCoord{Q: 1, R: -1}))
	assert.Equal(t, 3, HexDistance(HexCoord{Q: -1, R: -1}, HexCoord{Q: 2, R: -1}))
	assert.Equal(t, 4, HexDistance(HexCoord{Q: 2, R: -2}, HexCoord{Q: -2, R: 2}))
}

func TestHexIter_DoesNotAllocate(t *testing.T) {
	h, err := NewHex(4)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		it, _ := h.NeighborIter(HexCoord{Q: 1, R: -2})
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	})
	assert.Zero(t, allocs)
}
