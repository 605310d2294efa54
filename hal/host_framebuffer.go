package hal

import (
	"image"

	"segview/core/render"
)

// hostFramebuffer is owned by the goroutine running the frame loop. ebiten calls
// Update and Draw on the same goroutine and RunHeadless steps inline, so pixels
// written through Buffer() need no locking.
type hostFramebuffer struct {
	width    int
	height   int
	stride   int
	buf      []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := render.RGB565(render.RGB(r, g, b))
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// toRGBA expands the framebuffer into dst, which must be width x height.
func (f *hostFramebuffer) toRGBA(dst *image.RGBA) {
	rgbaFrom565(dst, f.buf, f.stride, f.width, f.height)
}

// rgbaFrom565 converts an RGB565 buffer with the given stride into dst.
func rgbaFrom565(dst *image.RGBA, src []byte, stride, w, h int) {
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return
			}
			c := unpack565(readPixel(src, off))
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = c.R
			dst.Pix[j+1] = c.G
			dst.Pix[j+2] = c.B
			dst.Pix[j+3] = c.A
		}
	}
}
