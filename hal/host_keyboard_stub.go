//go:build !cgo

package hal

import "segview/core/input"

type hostKeyboard struct {
	snap input.Snapshot
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) Snapshot() input.Snapshot { return k.snap }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
