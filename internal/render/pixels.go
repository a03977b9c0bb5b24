package render

import (
	"image/color"

	"lifegen/internal/core"
)

// DefaultPalette colors raster values: dead, alive, dying, void.
var DefaultPalette = []color.RGBA{
	core.CellDead:  {R: 12, G: 12, B: 16, A: 255},
	core.CellAlive: {R: 235, G: 235, B: 235, A: 255},
	core.CellDying: {R: 64, G: 120, B: 220, A: 255},
	core.CellVoid:  {R: 0, G: 0, B: 0, A: 0},
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
