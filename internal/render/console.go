package render

import (
	"bufio"
	"fmt"
	"io"

	"lifegen/internal/core"
)

// Glyphs used by WriteConsole, indexed by raster value.
var consoleGlyphs = [...]byte{
	core.CellDead:  '.',
	core.CellAlive: '#',
	core.CellDying: '+',
	core.CellVoid:  ' ',
}

// Glyph returns the console character for a raster value.
func Glyph(v uint8) byte {
	if int(v) < len(consoleGlyphs) {
		return consoleGlyphs[v]
	}
	return '?'
}

// WriteConsole prints cells as size.H lines of size.W glyphs.
func WriteConsole(w io.Writer, cells []uint8, size core.Size) error {
	if len(cells) != size.W*size.H {
		return fmt.Errorf("raster has %d cells, want %dx%d", len(cells), size.W, size.H)
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for _, c := range row {
			if err := bw.WriteByte(Glyph(c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
