// Package input tracks per-frame keyboard state.
//
// The host samples the whole keyboard once per frame into a Snapshot and feeds it
// to State.Refresh. State keeps the previous frame's snapshot so that presses can be
// detected on the edge: holding a key reports WasJustPressed only on the first frame.
package input

// Key identifies a key the program reacts to.
type Key uint8

const (
	KeyEscape Key = iota
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShift
	KeyR
	KeyF1
	KeyF2

	NumKeys
)

var keyNames = [NumKeys]string{
	KeyEscape: "Escape",
	KeyTab:    "Tab",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyShift:  "Shift",
	KeyR:      "R",
	KeyF1:     "F1",
	KeyF2:     "F2",
}

func (k Key) String() string {
	if k >= NumKeys {
		return "Unknown"
	}
	return keyNames[k]
}

// Snapshot is the pressed state of every Key at one instant.
type Snapshot [NumKeys]bool

// Set marks k pressed or released. Out-of-range keys are ignored.
func (s *Snapshot) Set(k Key, down bool) {
	if k >= NumKeys {
		return
	}
	s[k] = down
}

// State holds the snapshots of the current and the previous frame.
type State struct {
	Previous Snapshot
	Current  Snapshot
}

// Refresh advances one frame: Current becomes Previous and next becomes Current.
func (s *State) Refresh(next Snapshot) {
	s.Previous = s.Current
	s.Current = next
}

func (s *State) IsPressed(k Key) bool {
	return k < NumKeys && s.Current[k]
}

// WasJustPressed reports whether k went down between the previous and the current frame.
func (s *State) WasJustPressed(k Key) bool {
	return k < NumKeys && !s.Previous[k] && s.Current[k]
}

func (s *State) WasJustReleased(k Key) bool {
	return k < NumKeys && s.Previous[k] && !s.Current[k]
}
