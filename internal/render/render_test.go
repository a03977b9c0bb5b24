package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegen/internal/core"
	"lifegen/pkg/topology"
)

func TestHexRaster_RoundTripAndInjective(t *testing.T) {
	for radius := 0; radius <= 5; radius++ {
		hex, err := topology.NewHex(radius)
		require.NoError(t, err)
		size := HexRasterSize(radius)

		seen := map[[2]int]bool{}
		for c := range hex.Nodes() {
			x, y := HexToRaster(c, radius)
			require.True(t, x >= 0 && x < size.W && y >= 0 && y < size.H, "radius %d hex %v -> (%d,%d)", radius, c, x, y)
			assert.False(t, seen[[2]int{x, y}], "collision at (%d,%d)", x, y)
			seen[[2]int{x, y}] = true

			back, ok := RasterToHex(x, y, radius)
			assert.True(t, ok)
			assert.Equal(t, c, back)
		}

		onBoard := 0
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				if _, ok := RasterToHex(x, y, radius); ok {
					onBoard++
				}
			}
		}
		assert.Equal(t, hex.Len(), onBoard)
	}
}

func TestWriteConsole(t *testing.T) {
	cells := []uint8{
		core.CellDead, core.CellAlive, core.CellVoid,
		core.CellDying, core.CellDead, 9,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteConsole(&buf, cells, core.Size{W: 3, H: 2}))
	assert.Equal(t, ".# \n+.?\n", buf.String())

	assert.Error(t, WriteConsole(&buf, cells, core.Size{W: 4, H: 2}))
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 8)
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}

	FillPaletteRGBA(buf, []uint8{0, 7}, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)

	FillPaletteRGBA(buf, []uint8{1, 1}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}
