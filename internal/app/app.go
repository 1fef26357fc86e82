//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"chain-ca/internal/core"
	"chain-ca/internal/render"
	"chain-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA
	clock   *core.FixedStep

	scale int
}

// New constructs a Game for the provided simulation. The sim must already be
// reset with cfg.Seed.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		session: NewSession(sim, cfg.Seed),
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedInterval(cfg.Interval()),
		scale:   cfg.Scale,
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Session exposes the pause/step state, mainly so callers can hook reaction
// notifications.
func (g *Game) Session() *Session { return g.session }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed()
	}

	g.overlay.Update()
	boardW := g.session.Sim().Size().W * g.scale
	if !g.hud.Update(boardW) {
		g.handleClick(boardW)
	}

	g.session.Advance(g.clock.ShouldStep())
	if g.session.Paused() {
		g.hud.SetStatus("paused  (N step, Enter resume)")
	} else {
		g.hud.SetStatus("")
	}
	return nil
}

func (g *Game) handleClick(boardW int) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= boardW || mx < 0 || my < 0 {
		return
	}
	// Clicks on cells without an atom are ignored.
	_ = g.session.Trigger(mx/g.scale, my/g.scale)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.session.Sim()
	g.painter.Blit(screen, sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Title formats the window title for sim.
func Title(sim core.Sim) string {
	return fmt.Sprintf("chain-ca - %s", sim.Name())
}
