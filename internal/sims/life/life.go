package life

import (
	"fmt"
	"slices"

	"lifegen/internal/core"
	pcore "lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/timeline"
	"lifegen/pkg/topology"
	"lifegen/pkg/world"
)

// Config holds parameters for a rectangular life-like board.
type Config struct {
	Width   int
	Height  int
	Rule    string
	Density float64
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 48, Rule: rules.Classic.Name(), Density: 0.3, Workers: 1}
}

// FromMap populates a Config from a string map. Dimensions are passed
// through unchecked so the topology can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Width = core.IntFrom(cfg, "w", c.Width, nil)
	c.Height = core.IntFrom(cfg, "h", c.Height, nil)
	c.Rule = core.StringFrom(cfg, "rule", c.Rule)
	c.Density = core.FloatFrom(cfg, "density", c.Density, func(v float64) bool { return v >= 0 && v <= 1 })
	c.Workers = core.IntFrom(cfg, "workers", c.Workers, func(v int) bool { return v > 0 })
	return c
}

// Life runs a count rule on a bounded rectangular board.
type Life struct {
	cfg   Config
	rect  *topology.Rect
	world *world.RectWorld
	pool  *generation.BufferPool
	tl    *timeline.Timeline[topology.Point, bool]
	grid  *core.ByteGrid
}

// New returns a Life simulation with an empty board.
func New(cfg Config) (*Life, error) {
	return NewWithPool(cfg, generation.DefaultPool)
}

// NewWithPool is New with an explicit buffer pool.
func NewWithPool(cfg Config, pool *generation.BufferPool) (*Life, error) {
	rect, err := topology.NewRect(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	r, err := rules.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	w, err := world.NewRect(rect, r, world.WithPool(pool), world.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:   cfg,
		rect:  rect,
		world: w,
		pool:  pool,
		grid:  core.NewByteGrid(cfg.Width, cfg.Height),
	}
	if err := l.seed(nil); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.rect.Width(), H: l.rect.Height()} }

// Cells exposes the rasterized current generation.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Turn returns the number of steps since the last reset or injection.
func (l *Life) Turn() int { return l.tl.Turn() }

// Alive returns the number of alive cells.
func (l *Life) Alive() int { return l.grid.Count(core.CellAlive) }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) error {
	rng := pcore.NewRNG(seed)
	var alive []topology.Point
	for p := range l.rect.Nodes() {
		if rng.Chance(l.cfg.Density) {
			alive = append(alive, p)
		}
	}
	return l.seed(alive)
}

// Inject replaces the board with exactly the given alive cells.
func (l *Life) Inject(points [][2]int) error {
	alive := make([]topology.Point, len(points))
	for i, p := range points {
		alive[i] = topology.Point{X: p[0], Y: p[1]}
	}
	return l.seed(alive)
}

// Origin returns the center cell of the board.
func (l *Life) Origin() [2]int { return [2]int{l.rect.Width() / 2, l.rect.Height() / 2} }

func (l *Life) seed(alive []topology.Point) error {
	g, err := generation.NewDenseFromAlive(l.pool, l.rect, slices.Values(alive))
	if err != nil {
		return fmt.Errorf("seeding life board: %w", err)
	}
	tl, err := timeline.New[topology.Point, bool](l.world, g)
	if err != nil {
		g.Release()
		return err
	}
	if l.tl != nil {
		l.tl.Close()
	}
	l.tl = tl
	return l.rasterize()
}

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	if err := l.tl.Step(); err != nil {
		return err
	}
	return l.rasterize()
}

func (l *Life) rasterize() error {
	cur, err := l.tl.Current()
	if err != nil {
		return err
	}
	cells := l.grid.Cells()
	if d, ok := cur.(*generation.Dense); ok {
		for i := range cells {
			cells[i] = core.CellDead
			if d.AtIndex(i) {
				cells[i] = core.CellAlive
			}
		}
		return nil
	}
	for p := range l.rect.Nodes() {
		alive, err := cur.At(p)
		if err != nil {
			return err
		}
		cells[l.rect.Index(p)] = core.CellDead
		if alive {
			cells[l.rect.Index(p)] = core.CellAlive
		}
	}
	return nil
}

// Close releases the board.
func (l *Life) Close() { l.tl.Close() }

// Parameters describes the board for the HUD and CLI.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.rect.Width()),
				core.IntParam("h", "Height", l.rect.Height()),
				core.IntParam("workers", "Workers", l.cfg.Workers),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", l.world.Rules().Name()),
				core.FloatParam("density", "Seed density", l.cfg.Density),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
