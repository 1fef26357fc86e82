package record

import (
	"bytes"
	"image/color"
	"image/jpeg"

	"chain-ca/internal/render"

	"github.com/icza/mjpeg"
)

// Video encodes successive boards into an MJPEG AVI file.
type Video struct {
	aw      mjpeg.AviWriter
	w, h    int
	scale   int
	palette []color.RGBA
	buf     bytes.Buffer
	opts    jpeg.Options
	frames  int
}

// NewVideo creates path and prepares a w×h board recording where each cell is
// drawn as a scale×scale block.
func NewVideo(path string, w, h, scale int, fps int32, palette []color.RGBA) (*Video, error) {
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 20
	}
	aw, err := mjpeg.New(path, int32(w*scale), int32(h*scale), fps)
	if err != nil {
		return nil, err
	}
	return &Video{
		aw:      aw,
		w:       w,
		h:       h,
		scale:   scale,
		palette: palette,
		opts:    jpeg.Options{Quality: 90},
	}, nil
}

// AddFrame appends the board as the next frame.
func (v *Video) AddFrame(cells []uint8) error {
	img := render.Frame(cells, v.w, v.h, v.scale, v.palette)
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return err
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return err
	}
	v.frames++
	return nil
}

// Frames reports how many frames were written.
func (v *Video) Frames() int { return v.frames }

// Close finalizes the AVI headers.
func (v *Video) Close() error {
	return v.aw.Close()
}
