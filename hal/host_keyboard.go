//go:build cgo

package hal

import (
	"segview/core/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap lists the ebiten keys sampled for each input.Key. Any of them held
// counts as pressed.
var keyMap = [input.NumKeys][]ebiten.Key{
	input.KeyEscape: {ebiten.KeyEscape},
	input.KeyTab:    {ebiten.KeyTab},
	input.KeyUp:     {ebiten.KeyArrowUp},
	input.KeyDown:   {ebiten.KeyArrowDown},
	input.KeyLeft:   {ebiten.KeyArrowLeft},
	input.KeyRight:  {ebiten.KeyArrowRight},
	input.KeyShift:  {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	input.KeyR:      {ebiten.KeyR},
	input.KeyF1:     {ebiten.KeyF1},
	input.KeyF2:     {ebiten.KeyF2},
}

type hostKeyboard struct {
	snap input.Snapshot
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) Snapshot() input.Snapshot { return k.snap }

// poll samples the keyboard once. Call it at the start of every Update.
func (k *hostKeyboard) poll() {
	var s input.Snapshot
	for key, eks := range keyMap {
		for _, ek := range eks {
			if ebiten.IsKeyPressed(ek) {
				s.Set(input.Key(key), true)
				break
			}
		}
	}
	k.snap = s
}
