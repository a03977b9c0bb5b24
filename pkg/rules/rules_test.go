package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegen/pkg/core"
)

func TestClassic_NextFromCount(t *testing.T) {
	for count := 0; count <= 8; count++ {
		assert.Equal(t, count == 3, Classic.NextFromCount(false, count), "birth at %d", count)
		assert.Equal(t, count == 2 || count == 3, Classic.NextFromCount(true, count), "survival at %d", count)
	}
	assert.False(t, Classic.NextFromCount(false, -1))
	assert.False(t, Classic.NextFromCount(true, 9))
}

func TestHexVariants_ClosedForm(t *testing.T) {
	tests := []struct {
		rule    LifeLike
		birth   func(n int) bool
		survive func(n int) bool
	}{
		{HexB2S34, func(n int) bool { return n == 2 }, func(n int) bool { return n == 3 || n == 4 }},
		{HexB2S35, func(n int) bool { return n == 2 }, func(n int) bool { return n == 3 || n == 5 }},
		{HexB24S35, func(n int) bool { return n == 2 || n == 4 }, func(n int) bool { return n == 3 || n == 5 }},
		{HexB2S23, func(n int) bool { return n == 2 }, func(n int) bool { return n == 2 || n == 3 }},
	}
	for _, tc := range tests {
		t.Run(tc.rule.Name(), func(t *testing.T) {
			assert.False(t, tc.rule.Default())
			for n := 0; n <= 6; n++ {
				assert.Equal(t, tc.birth(n), tc.rule.NextFromCount(false, n), "birth at %d", n)
				assert.Equal(t, tc.survive(n), tc.rule.NextFromCount(true, n), "survival at %d", n)
			}
		})
	}
}

func TestLifeLike_Next_MatchesCountOverload(t *testing.T) {
	neighbors := []bool{true, false, true, true, false, false, false, false}
	before := append([]bool(nil), neighbors...)

	for _, current := range []bool{false, true} {
		got, err := Classic.Next(current, neighbors)
		require.NoError(t, err)
		assert.Equal(t, Classic.NextFromCount(current, 3), got)
	}
	assert.Equal(t, before, neighbors, "neighbors must not be mutated")

	got, err := Classic.Next(true, []bool{})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestLifeLike_Next_NilNeighbors_InvalidArgument(t *testing.T) {
	_, err := Classic.Next(true, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestParseLifeLike(t *testing.T) {
	r, err := ParseLifeLike("b36/s23")
	require.NoError(t, err)
	assert.Equal(t, "B36/S23", r.String())
	assert.Equal(t, "B36/S23", r.Name())
	assert.True(t, r.NextFromCount(false, 6))

	r, err = ParseLifeLike("B/S")
	require.NoError(t, err)
	assert.False(t, r.NextFromCount(false, 3))

	for _, bad := range []string{"", "B3", "S23/B3", "B9/S23", "B3/S2x", "23/3"} {
		_, err := ParseLifeLike(bad)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "rulestring %q", bad)
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("classic")
	require.NoError(t, err)
	assert.Equal(t, Classic, r)

	r, err = Lookup("HEX-B2S34")
	require.NoError(t, err)
	assert.Equal(t, HexB2S34, r)

	r, err = Lookup("B2/S34")
	require.NoError(t, err)
	assert.Equal(t, "B2/S34", r.Name())
	assert.Equal(t, HexB2S34.String(), r.(LifeLike).String())

	_, err = Lookup("seeds")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	assert.Equal(t, []string{"classic", "hex-b24s35", "hex-b2s23", "hex-b2s34", "hex-b2s35"}, Names())
}

func TestBriansBrain_Transitions(t *testing.T) {
	var r BriansBrain
	assert.Equal(t, BrainOff, r.Default())

	next, err := r.Next(BrainOn, []uint8{BrainOn, BrainOn})
	require.NoError(t, err)
	assert.Equal(t, BrainDying, next)

	next, err = r.Next(BrainDying, []uint8{})
	require.NoError(t, err)
	assert.Equal(t, BrainOff, next)

	next, err = r.Next(BrainOff, []uint8{BrainOn, BrainDying, BrainOn, BrainOff})
	require.NoError(t, err)
	assert.Equal(t, BrainOn, next)

	next, err = r.Next(BrainOff, []uint8{BrainOn, BrainOn, BrainOn})
	require.NoError(t, err)
	assert.Equal(t, BrainOff, next)

	_, err = r.Next(BrainOff, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
