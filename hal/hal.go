// Package hal is the contact point between segview and the host: a framebuffer to
// draw into, a keyboard to sample, and a logger.
//
// The app only talks to these interfaces. The host implementations run either in
// an ebiten window (RunWindow) or without one (RunHeadless).
package hal

import (
	"errors"

	"segview/core/input"

	"go.uber.org/zap"
)

var (
	// ErrExit is returned by an app step to end the run cleanly.
	ErrExit = errors.New("exit requested")

	ErrNoDisplay = errors.New("no display")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Keyboard samples the whole keyboard at once.
type Keyboard interface {
	// Snapshot returns the key state sampled for the current frame.
	Snapshot() input.Snapshot
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
	Input() Input
}
