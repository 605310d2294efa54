package app

import (
	"image/color"

	"segview/core/render"
	"segview/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = fbDisplay{}

// fbDisplay lets tinyfont draw into the same RGB565 target the canvas uses.
type fbDisplay struct {
	t *render.RGB565Target
}

func (d fbDisplay) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), render.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d fbDisplay) Display() error { return nil }

// fillRect paints a clipped rectangle.
func (d fbDisplay) fillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 {
		return
	}
	col := render.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	for yy := y; yy < y+h; yy++ {
		d.t.FillSpan(x, x+w-1, yy, col)
	}
}

// targetFor wraps an RGB565 framebuffer as a render target. A nil or non-RGB565
// framebuffer yields nil, which draws nothing.
func targetFor(fb hal.Framebuffer) *render.RGB565Target {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return &render.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
}
