package chain

import "image/color"

// Display values written to Cells(); they index Palette().
const (
	displayEmpty   = uint8(Empty)
	displayAtom    = uint8(Atom)
	displayNeutron = uint8(Neutron)
)

var chainPalette = []color.RGBA{
	displayEmpty:   {R: 255, G: 255, B: 255, A: 255},
	displayAtom:    {R: 0, G: 0, B: 255, A: 255},
	displayNeutron: {R: 255, G: 0, B: 0, A: 255},
}

// Palette exposes the color palette used for rendering the board.
func (r *Reactor) Palette() []color.RGBA {
	return chainPalette
}

func (r *Reactor) rebuildDisplay() {
	r.grid.Each(func(_ CellID, c *Cell) {
		p := c.Pos()
		r.display.Set(p.X-1, p.Y-1, uint8(c.State()))
	})
}
