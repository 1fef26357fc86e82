//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"chain-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neutronProvider interface {
	Neutrons(fn func(x, y, dx, dy int))
}

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	sim      core.Sim
	scale    int
	showDirs bool
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 neutron directions, 2 cell grid.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDirs = !o.showDirs
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showGrid && scale >= 4 {
		o.drawGrid(screen, size, scale)
	}
	if o.showDirs {
		if provider, ok := o.sim.(neutronProvider); ok {
			o.drawDirections(screen, provider, scale)
		}
	}
}

func (o *Overlay) drawDirections(screen *ebiten.Image, provider neutronProvider, scale int) {
	s := float64(scale)
	thickness := math.Max(1, s*0.2)
	provider.Neutrons(func(x, y, dx, dy int) {
		if dx == 0 && dy == 0 {
			return
		}
		cx := (float64(x) + 0.5) * s
		cy := (float64(y) + 0.5) * s
		length := s * 0.9
		o.drawLine(screen, cx, cy, cx+float64(dx)*length, cy+float64(dy)*length, thickness, tickColor)
	})
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size, scale int) {
	w := float64(size.W * scale)
	h := float64(size.H * scale)
	for x := 0; x <= size.W; x++ {
		px := float64(x * scale)
		o.drawLine(screen, px, 0, px, h, 1, gridColor)
	}
	for y := 0; y <= size.H; y++ {
		py := float64(y * scale)
		o.drawLine(screen, 0, py, w, py, 1, gridColor)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

var (
	tickColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	gridColor = color.RGBA{R: 0, G: 0, B: 0, A: 40}
)
