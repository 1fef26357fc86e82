package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const upperHalfBlock = '▀'

// TerminalPainter draws palette-indexed cells onto a tcell screen, packing two
// board rows into each terminal row with an upper half block.
type TerminalPainter struct {
	colors   []tcell.Color
	OffsetX  int
	OffsetY  int
	fallback tcell.Color
}

// NewTerminalPainter converts palette into terminal colors.
func NewTerminalPainter(palette []color.RGBA) *TerminalPainter {
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &TerminalPainter{colors: colors, fallback: tcell.ColorBlack}
}

// Rows reports how many terminal rows a board of height h occupies.
func Rows(h int) int { return (h + 1) / 2 }

// Draw paints a w×h board. It does not call Show.
func (p *TerminalPainter) Draw(s tcell.Screen, cells []uint8, w, h int) {
	if len(cells) != w*h {
		return
	}
	for row := 0; row < Rows(h); row++ {
		top := row * 2
		bottom := top + 1
		for x := 0; x < w; x++ {
			fg := p.color(cells[top*w+x])
			bg := tcell.ColorDefault
			if bottom < h {
				bg = p.color(cells[bottom*w+x])
			}
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			s.SetContent(p.OffsetX+x, p.OffsetY+row, upperHalfBlock, nil, style)
		}
	}
}

// CellAt maps a terminal position to the board cell shown in the top half of
// that character. ok is false outside the board.
func (p *TerminalPainter) CellAt(sx, sy, w, h int) (x, y int, ok bool) {
	x = sx - p.OffsetX
	y = (sy - p.OffsetY) * 2
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func (p *TerminalPainter) color(v uint8) tcell.Color {
	if int(v) >= len(p.colors) {
		if len(p.colors) == 0 {
			return p.fallback
		}
		return p.colors[len(p.colors)-1]
	}
	return p.colors[v]
}
