package briansbrain

import (
	"fmt"

	"lifegen/internal/core"
	pcore "lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/timeline"
	"lifegen/pkg/topology"
	"lifegen/pkg/world"
)

// Config holds parameters for a Brian's Brain board.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Density: 0.125}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Width = core.IntFrom(cfg, "w", c.Width, nil)
	c.Height = core.IntFrom(cfg, "h", c.Height, nil)
	c.Density = core.FloatFrom(cfg, "density", c.Density, func(v float64) bool { return v >= 0 && v <= 1 })
	return c
}

// Brain implements Brian's Brain on the generic keyed world.
type Brain struct {
	cfg   Config
	rect  *topology.Rect
	world *world.World[topology.Point, uint8]
	tl    *timeline.Timeline[topology.Point, uint8]
	grid  *core.ByteGrid
}

// New creates a Brain simulation with an empty board.
func New(cfg Config) (*Brain, error) {
	rect, err := topology.NewRect(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	w, err := world.New[topology.Point, uint8](rect, rules.BriansBrain{})
	if err != nil {
		return nil, err
	}
	b := &Brain{cfg: cfg, rect: rect, world: w, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	if err := b.seed(map[topology.Point]uint8{}); err != nil {
		return nil, err
	}
	return b, nil
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.rect.Width(), H: b.rect.Height()} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.grid.Cells() }

// Turn returns the number of steps since the last reset or injection.
func (b *Brain) Turn() int { return b.tl.Turn() }

// Alive returns the number of firing cells.
func (b *Brain) Alive() int { return b.grid.Count(core.CellAlive) }

// Reset randomizes cells into off or firing states.
func (b *Brain) Reset(seed int64) error {
	rng := pcore.NewRNG(seed)
	states := map[topology.Point]uint8{}
	for p := range b.rect.Nodes() {
		if rng.Chance(b.cfg.Density) {
			states[p] = rules.BrainOn
		}
	}
	return b.seed(states)
}

// Inject replaces the board with the given firing cells.
func (b *Brain) Inject(points [][2]int) error {
	states := make(map[topology.Point]uint8, len(points))
	for _, p := range points {
		states[topology.Point{X: p[0], Y: p[1]}] = rules.BrainOn
	}
	return b.seed(states)
}

// Origin returns the center cell of the board.
func (b *Brain) Origin() [2]int { return [2]int{b.rect.Width() / 2, b.rect.Height() / 2} }

func (b *Brain) seed(states map[topology.Point]uint8) error {
	g, err := generation.NewKeyed[topology.Point, uint8](b.rect, states, rules.BrainOff)
	if err != nil {
		return fmt.Errorf("seeding brain board: %w", err)
	}
	tl, err := timeline.New[topology.Point, uint8](b.world, g)
	if err != nil {
		return err
	}
	if b.tl != nil {
		b.tl.Close()
	}
	b.tl = tl
	return b.rasterize()
}

// Step advances the automaton by one tick.
func (b *Brain) Step() error {
	if err := b.tl.Step(); err != nil {
		return err
	}
	return b.rasterize()
}

func (b *Brain) rasterize() error {
	cur, err := b.tl.Current()
	if err != nil {
		return err
	}
	cells := b.grid.Cells()
	for p := range b.rect.Nodes() {
		s, err := cur.At(p)
		if err != nil {
			return err
		}
		switch s {
		case rules.BrainOn:
			cells[b.rect.Index(p)] = core.CellAlive
		case rules.BrainDying:
			cells[b.rect.Index(p)] = core.CellDying
		default:
			cells[b.rect.Index(p)] = core.CellDead
		}
	}
	return nil
}

// Close releases the board.
func (b *Brain) Close() { b.tl.Close() }

// Parameters describes the board for the HUD and CLI.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", b.rect.Width()),
				core.IntParam("h", "Height", b.rect.Height()),
				core.FloatParam("density", "Seed density", b.cfg.Density),
			},
		},
	}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
