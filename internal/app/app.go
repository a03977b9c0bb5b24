//go:build ebiten

package app

import (
	"errors"
	"time"

	"lifegen/internal/core"
	"lifegen/internal/render"
	"lifegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	restart func() error
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. restart restores the
// initial board when R is pressed.
func New(sim core.Sim, restart func() error, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		restart: restart,
		painter: render.NewGridPainter(size.W, size.H, nil),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
	}
}

// Run opens a window for sim and blocks until it is closed.
func Run(sim core.Sim, restart func() error, scale, tps int) error {
	game := New(sim, restart, scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifegen - " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
		g.tickOnce = false
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		logrus.Infof("reseeding %s with %d", g.sim.Name(), seed)
		if err := g.sim.Reset(seed); err != nil {
			return err
		}
		g.tickOnce = false
		return nil
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		return g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state and the HUD beside it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, h, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, max(s.H*g.scale, ui.MinHeight(g.sim))
}
