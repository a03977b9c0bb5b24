package hexlife

import (
	"fmt"
	"slices"

	"lifegen/internal/core"
	"lifegen/internal/render"
	pcore "lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/timeline"
	"lifegen/pkg/topology"
	"lifegen/pkg/world"
)

// Config holds parameters for a hexagonal board.
type Config struct {
	Radius  int
	Rule    string
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Radius: 16, Rule: rules.HexB2S34.Name(), Density: 0.2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Radius = core.IntFrom(cfg, "radius", c.Radius, nil)
	c.Rule = core.StringFrom(cfg, "rule", c.Rule)
	c.Density = core.FloatFrom(cfg, "density", c.Density, func(v float64) bool { return v >= 0 && v <= 1 })
	return c
}

// HexLife runs a count rule on a hexagonal board.
type HexLife struct {
	cfg   Config
	hex   *topology.Hex
	world *world.HexWorld
	tl    *timeline.Timeline[topology.HexCoord, bool]
	grid  *core.ByteGrid
	alive int
}

// New returns a HexLife simulation with an empty board.
func New(cfg Config) (*HexLife, error) {
	hex, err := topology.NewHex(cfg.Radius)
	if err != nil {
		return nil, err
	}
	r, err := rules.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	w, err := world.NewHex(hex, r)
	if err != nil {
		return nil, err
	}
	size := render.HexRasterSize(cfg.Radius)
	h := &HexLife{cfg: cfg, hex: hex, world: w, grid: core.NewByteGrid(size.W, size.H)}
	if err := h.seed(nil); err != nil {
		return nil, err
	}
	return h, nil
}

// Name returns the simulation identifier.
func (h *HexLife) Name() string { return "hexlife" }

// Size returns the raster dimensions.
func (h *HexLife) Size() core.Size { return core.Size{W: h.grid.W, H: h.grid.H} }

// Cells exposes the rasterized board; off-board cells hold core.CellVoid.
func (h *HexLife) Cells() []uint8 { return h.grid.Cells() }

// Turn returns the number of steps since the last reset or injection.
func (h *HexLife) Turn() int { return h.tl.Turn() }

// Alive returns the number of alive cells.
func (h *HexLife) Alive() int { return h.alive }

// Reset randomizes the board using the provided seed.
func (h *HexLife) Reset(seed int64) error {
	rng := pcore.NewRNG(seed)
	var alive []topology.HexCoord
	for c := range h.hex.Nodes() {
		if rng.Chance(h.cfg.Density) {
			alive = append(alive, c)
		}
	}
	return h.seed(alive)
}

// Inject replaces the board with exactly the given alive (q, r) cells.
func (h *HexLife) Inject(points [][2]int) error {
	alive := make([]topology.HexCoord, len(points))
	for i, p := range points {
		alive[i] = topology.HexCoord{Q: p[0], R: p[1]}
	}
	return h.seed(alive)
}

// Origin returns the center cell of the board.
func (h *HexLife) Origin() [2]int { return [2]int{0, 0} }

func (h *HexLife) seed(alive []topology.HexCoord) error {
	g, err := generation.NewSparse[topology.HexCoord](h.hex, slices.Values(alive))
	if err != nil {
		return fmt.Errorf("seeding hex board: %w", err)
	}
	tl, err := timeline.New[topology.HexCoord, bool](h.world, g)
	if err != nil {
		return err
	}
	if h.tl != nil {
		h.tl.Close()
	}
	h.tl = tl
	return h.rasterize()
}

// Step advances the simulation by one generation.
func (h *HexLife) Step() error {
	if err := h.tl.Step(); err != nil {
		return err
	}
	return h.rasterize()
}

func (h *HexLife) rasterize() error {
	cur, err := h.tl.Current()
	if err != nil {
		return err
	}
	h.grid.Fill(core.CellVoid)
	h.alive = 0
	radius := h.hex.Radius()
	for c := range h.hex.Nodes() {
		alive, err := cur.At(c)
		if err != nil {
			return err
		}
		x, y := render.HexToRaster(c, radius)
		if alive {
			h.grid.Set(x, y, core.CellAlive)
			h.alive++
			continue
		}
		h.grid.Set(x, y, core.CellDead)
	}
	return nil
}

// Close releases the board.
func (h *HexLife) Close() { h.tl.Close() }

// Parameters describes the board for the HUD and CLI.
func (h *HexLife) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("radius", "Radius", h.hex.Radius()),
				core.IntParam("cells", "Cells", h.hex.Len()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", h.world.Rules().Name()),
				core.FloatParam("density", "Seed density", h.cfg.Density),
			},
		},
	}}
}

func init() {
	core.Register("hexlife", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
