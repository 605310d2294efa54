// Package app is the per-frame host loop body: read the keyboard, apply edits,
// rebuild the view-projection matrix and the segment queries, build the render list,
// rasterize it into the framebuffer and present.
package app

import (
	"segview/core/geom"
	"segview/core/input"
	"segview/core/render"
	"segview/core/scene"
	"segview/hal"

	"go.uber.org/zap"
)

// Config is the start-up configuration of the app.
type Config struct {
	Title  string
	Scene  scene.State
	Render render.Options
	HUD    bool
}

// DefaultConfig returns the reference scene with the HUD on.
func DefaultConfig() Config {
	return Config{
		Title:  "segview",
		Scene:  scene.Default(),
		Render: render.DefaultOptions(),
		HUD:    true,
	}
}

type app struct {
	log *zap.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	title   string
	initial scene.State
	state   scene.State
	fields  []scene.Field
	opts    render.Options
	hud     bool

	keys    input.State
	editor  editor
	builder render.Builder
	list    render.List
	target  *render.RGB565Target
	canvas  *render.Canvas

	frames uint64
}

// NewWithConfig wires the app to h and returns its frame step. The step returns
// hal.ErrExit when Escape goes down.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := newApp(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guardStep(h, a.step)
}

// New wires the app with DefaultConfig.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func newApp(h hal.HAL, cfg Config) (*app, error) {
	log := h.Logger()
	if log == nil {
		log = zap.NewNop()
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, hal.ErrNoDisplay
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, hal.ErrNoDisplay
	}

	a := &app{
		log:     log,
		fb:      fb,
		title:   cfg.Title,
		initial: cfg.Scene,
		state:   cfg.Scene,
		opts:    cfg.Render,
		hud:     cfg.HUD,
		target:  targetFor(fb),
	}
	a.canvas = render.NewCanvas(a.target)
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	a.fields = scene.Fields(&a.state)
	a.builder.Viewport = geom.MakeViewportMatrix(0, 0, geom.Scalar(fb.Width()), geom.Scalar(fb.Height()), 0, 1)

	log.Info("app start",
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()),
		zap.String("camera_translate", fmtVec(a.state.Camera.Translate)),
		zap.String("camera_rotate", fmtVec(a.state.Camera.Rotate)),
		zap.String("segment_origin", fmtVec(a.state.Segment.Origin)),
		zap.String("segment_diff", fmtVec(a.state.Segment.Diff)),
		zap.String("point", fmtVec(a.state.Point)),
	)
	if a.state.Segment.Degenerate() {
		log.Warn("segment has zero length; closest point is its origin")
	}
	return a, nil
}

func (a *app) step() error {
	a.frames++

	var snap input.Snapshot
	if a.kbd != nil {
		snap = a.kbd.Snapshot()
	}
	a.keys.Refresh(snap)

	if a.keys.WasJustPressed(input.KeyEscape) {
		a.log.Info("exit requested", zap.Uint64("frames", a.frames))
		return hal.ErrExit
	}
	a.handleToggles()

	if a.editor.update(&a.keys, a.fields) {
		f := a.fields[a.editor.sel]
		a.log.Debug("edit", zap.String("field", f.Group+"."+f.Axis), zap.Float32("value", *f.Value))
	}
	if a.keys.WasJustReleased(input.KeyLeft) || a.keys.WasJustReleased(input.KeyRight) {
		f := a.fields[a.editor.sel]
		a.log.Info("edit done", zap.String("field", f.Group+"."+f.Axis), zap.Float32("value", *f.Value))
	}

	res := a.state.Evaluate()
	a.builder.ViewProj = res.ViewProj
	a.builder.Frame(&a.list, &a.state, res, a.opts)

	a.canvas.Clear(render.ColorClear)
	a.list.Submit(a.canvas)
	if a.hud {
		a.drawHUD(res)
	}
	return a.fb.Present()
}

func (a *app) handleToggles() {
	if a.keys.WasJustPressed(input.KeyR) {
		a.state = a.initial
		a.log.Info("scene reset")
	}
	if a.keys.WasJustPressed(input.KeyF1) {
		a.hud = !a.hud
	}
	if a.keys.WasJustPressed(input.KeyF2) {
		a.opts.SphereMarkers = !a.opts.SphereMarkers
		a.log.Info("sphere markers", zap.Bool("on", a.opts.SphereMarkers))
	}
}
