package app

import (
	"segview/core/input"
	"segview/core/scene"
)

// shiftMultiplier scales the drag step while Shift is held.
const shiftMultiplier = 10

// editor drives the scene fields from the keyboard.
//
// Up/Down and Tab move the selection on the key edge. Left/Right act while held,
// changing the selected value by its step once per frame, like dragging a slider.
type editor struct {
	sel int
}

// update applies one frame of input to fields and reports whether a value changed.
func (e *editor) update(keys *input.State, fields []scene.Field) bool {
	n := len(fields)
	if n == 0 {
		return false
	}

	switch {
	case keys.WasJustPressed(input.KeyUp):
		e.sel = (e.sel - 1 + n) % n
	case keys.WasJustPressed(input.KeyDown):
		e.sel = (e.sel + 1) % n
	case keys.WasJustPressed(input.KeyTab):
		e.sel = (e.sel/3 + 1) * 3 % n
	}
	if e.sel >= n {
		e.sel = 0
	}

	dir := 0
	if keys.IsPressed(input.KeyRight) {
		dir++
	}
	if keys.IsPressed(input.KeyLeft) {
		dir--
	}
	if dir == 0 {
		return false
	}

	f := fields[e.sel]
	step := f.Step
	if keys.IsPressed(input.KeyShift) {
		step *= shiftMultiplier
	}
	*f.Value += step * float32(dir)
	return true
}
