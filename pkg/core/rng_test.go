package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_SameSeed_SameSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Bool(), b.Bool(), "draw %d", i)
	}
}

func TestRNG_Chance_Clamps(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.False(t, r.Chance(0))
		assert.False(t, r.Chance(-1))
		assert.True(t, r.Chance(1))
		assert.True(t, r.Chance(2))
	}
}

func TestRNG_Uint8n_Bounds(t *testing.T) {
	r := NewRNG(3)
	assert.Equal(t, uint8(0), r.Uint8n(0))
	for i := 0; i < 256; i++ {
		assert.Less(t, r.Uint8n(5), uint8(5))
	}
}
