// Package render maps generations onto 2D rasters and draws those rasters
// to the console or, with the ebiten build tag, to a window.
package render

import (
	"lifegen/internal/core"
	"lifegen/pkg/topology"
)

// HexRasterSize returns the raster that holds a hex board of the given
// radius in doubled-width layout: (4r+1) columns by (2r+1) rows.
func HexRasterSize(radius int) core.Size {
	return core.Size{W: 4*radius + 1, H: 2*radius + 1}
}

// HexToRaster maps an axial coordinate to its raster cell. Neighboring hexes
// in a row sit two columns apart; odd rows shift by one column.
func HexToRaster(c topology.HexCoord, radius int) (x, y int) {
	return 2*c.Q + c.R + 2*radius, c.R + radius
}

// RasterToHex inverts HexToRaster. It reports false for raster cells that do
// not correspond to a hex on the board.
func RasterToHex(x, y, radius int) (topology.HexCoord, bool) {
	r := y - radius
	twoQ := x - 2*radius - r
	if twoQ%2 != 0 {
		return topology.HexCoord{}, false
	}
	c := topology.HexCoord{Q: twoQ / 2, R: r}
	if !topology.IsWithinRadius(c, radius) {
		return topology.HexCoord{}, false
	}
	return c, true
}
