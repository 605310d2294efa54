package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"segview/hal"

	"go.uber.org/zap"
	"tinygo.org/x/tinyfont"
)

// guardStep turns a panic inside step into an error. The panic and its stack are
// logged and painted on the framebuffer so the window shows what went wrong before
// it closes.
func guardStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			if l := h.Logger(); l != nil {
				l.Error("frame panic", zap.Any("panic", v), zap.ByteString("stack", stack))
			}
			paintPanic(h, v, stack)
			err = fmt.Errorf("frame panic: %v", v)
		}()
		return step()
	}
}

func paintPanic(h hal.HAL, v any, stack []byte) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(255, 255, 255)

	_, outboxWidth := tinyfont.LineWidth(hudFont, "0")
	fontWidth := int16(outboxWidth)
	fontHeight := int16(hudFont.GetYAdvance())
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{
		"segview panic:",
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	d := fbDisplay{t: targetFor(fb)}
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := fontHeight
	maxH := int16(fb.Height())
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, hudFont, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
