//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunWindow starts a desktop window that displays the framebuffer and samples the
// keyboard once per frame. It blocks until the window closes or the app returns
// ErrExit.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetTPS(60)

	h.logger.Info("window open", zap.Int("width", h.fb.width), zap.Int("height", h.fb.height))
	err := ebiten.RunGame(g)
	h.logger.Info("window closed", zap.Uint64("frames", g.frames), zap.Uint64("presented", h.fb.presents))
	return err
}

type hostGame struct {
	h      *hostHAL
	img    *image.RGBA
	fbImg  *ebiten.Image
	step   func() error
	frames uint64
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.frames++
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.toRGBA(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
