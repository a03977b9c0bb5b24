package core

import (
	"maps"
	"slices"
)

// Size describes the dimensions of a simulation raster.
type Size struct {
	W int
	H int
}

// Raster cell values produced by Sim.Cells.
const (
	CellDead  uint8 = 0
	CellAlive uint8 = 1
	CellDying uint8 = 2
	CellVoid  uint8 = 3
)

// Sim is the contract the CLI and GUI drive. Implementations own a timeline
// and rasterize its current generation into Cells.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step() error
	Cells() []uint8
	Turn() int
	Alive() int
	Close()
}

// Injector is implemented by sims that accept explicit alive cells. Points
// are board coordinates: (x, y) for rectangular boards, (q, r) for hex.
// Origin is the board's center cell in the same coordinates.
type Injector interface {
	Inject(points [][2]int) error
	Origin() [2]int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in sorted order.
func SimNames() []string {
	return slices.Sorted(maps.Keys(sims))
}
