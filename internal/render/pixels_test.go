package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPalette = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 4*4)
	FillPaletteRGBA(buf, []uint8{0, 1, 2, 9}, testPalette)

	assert.Equal(t, []byte{255, 255, 255, 255}, buf[0:4])
	assert.Equal(t, []byte{0, 0, 255, 255}, buf[4:8])
	assert.Equal(t, []byte{255, 0, 0, 255}, buf[8:12])
	assert.Equal(t, []byte{255, 0, 0, 255}, buf[12:16], "out of range values clamp to the last entry")

	FillPaletteRGBA(buf, []uint8{1, 1, 1, 1}, nil)
	assert.Equal(t, make([]byte, 16), buf)
}

func TestFrameScalesCells(t *testing.T) {
	img := Frame([]uint8{0, 1, 2, 0}, 2, 2, 3, testPalette)

	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	assert.Equal(t, testPalette[0], img.RGBAAt(0, 0))
	assert.Equal(t, testPalette[1], img.RGBAAt(5, 2))
	assert.Equal(t, testPalette[2], img.RGBAAt(2, 3))
	assert.Equal(t, testPalette[0], img.RGBAAt(5, 5))
}

func TestFrameIgnoresMismatchedCells(t *testing.T) {
	img := Frame([]uint8{1}, 2, 2, 1, testPalette)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}
