package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPainterPacksRows(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(10, 10)

	p := NewTerminalPainter(testPalette)
	p.OffsetX = 1
	cells := []uint8{
		0, 1,
		2, 0,
		1, 2,
	}
	p.Draw(s, cells, 2, 3)

	r, _, style, _ := s.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, upperHalfBlock, r)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)

	_, _, style, _ = s.GetContent(2, 1)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.ColorDefault, bg, "odd height leaves the last bottom half unset")

	assert.Equal(t, 2, Rows(3))
}

func TestTerminalPainterCellAt(t *testing.T) {
	p := NewTerminalPainter(testPalette)
	p.OffsetX, p.OffsetY = 2, 1

	x, y, ok := p.CellAt(3, 2, 4, 4)
	require.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	_, _, ok = p.CellAt(1, 1, 4, 4)
	assert.False(t, ok)
	_, _, ok = p.CellAt(2, 3, 4, 4)
	assert.False(t, ok)
}
