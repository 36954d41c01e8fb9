//go:build ebiten

package app

import (
	"time"

	"listlife/internal/core"
	"listlife/internal/render"
	"listlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It paces
// generations independently of the display rate, forwards transition reports
// to the painter, and maps input to board edits.
type Game struct {
	sim     core.Sim
	painter *render.Painter
	hud     *ui.HUD
	pacer   *core.Pacer

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	density    float64
	generation int
}

// New constructs a Game for the provided simulation and seeds it.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, HUDWidth),
		pacer:   core.NewPacer(cfg.TPS),
		scale:   cfg.Scale,
		density: cfg.Density,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset reseeds the simulation, runs the settle generation, and redraws the
// whole viewport.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	// One settle pass normalizes the freshly seeded state before the first
	// draw, so the initial frame already reflects the generation rules.
	g.sim.Step()
	g.painter.Redraw(g.sim.Cells())
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation when due.
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
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleDensityKeys()
	g.handleToggle()

	if g.hud != nil {
		g.hud.SetStatus(g.generation, g.paused)
		g.hud.Update()
	}

	if (!g.paused && g.pacer.Tick()) || g.tickOnce {
		changes := g.sim.Step()
		g.painter.Apply(changes)
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// handleDensityKeys adjusts the reseed density through the sim's parameter
// setter, when it exposes one.
func (g *Game) handleDensityKeys() {
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		delta = -0.02
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		delta = 0.02
	}
	if delta == 0 {
		return
	}
	g.density += delta
	if g.density < 0 {
		g.density = 0
	}
	if g.density > 1 {
		g.density = 1
	}
	setter.SetFloatParameter("density", g.density)
}

// handleToggle flips the cell under the cursor on a left click and repaints
// just that cell.
func (g *Game) handleToggle() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	size := g.sim.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return
	}
	change := g.sim.Toggle(x, y)
	g.painter.Apply([]core.Change{change})
}

// Draw renders the board view and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W*g.scale + HUDWidth, size.H * g.scale
}
