package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// WriteSnapshot encodes the framebuffer as PNG, enlarged by an integer scale
// (values below 1 mean 1) with nearest-neighbour sampling.
func WriteSnapshot(w io.Writer, fb Framebuffer, scale int) error {
	if fb == nil {
		return ErrNoDisplay
	}
	if fb.Format() != PixelFormatRGB565 {
		return fmt.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	rgbaFrom565(src, fb.Buffer(), fb.StrideBytes(), fb.Width(), fb.Height())

	var img image.Image = src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// SaveSnapshot writes a PNG snapshot of fb to path.
func SaveSnapshot(fb Framebuffer, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WriteSnapshot(f, fb, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
