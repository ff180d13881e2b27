// Package input defines the normalized input event stream consumed by the interaction loop.
// Window backends translate their native callbacks into Events; everything downstream
// (gesture interpretation, held keys, picking) only ever sees this representation.
package input

import (
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
)

// Type identifies the kind of an Event.
type Type int

const (
	KeyDown Type = iota
	KeyUp
	PointerDown
	PointerMove
	PointerUp
	PointerCancel
	Scroll
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
	Resize
	PointerLeave
)

var typeNames = [...]string{
	KeyDown:       "key_down",
	KeyUp:         "key_up",
	PointerDown:   "pointer_down",
	PointerMove:   "pointer_move",
	PointerUp:     "pointer_up",
	PointerCancel: "pointer_cancel",
	Scroll:        "scroll",
	TouchStart:    "touch_start",
	TouchMove:     "touch_move",
	TouchEnd:      "touch_end",
	TouchCancel:   "touch_cancel",
	Resize:        "resize",
	PointerLeave:  "pointer_leave",
}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Touch is a single active contact point in client pixels.
type Touch struct {
	ID   int
	X, Y float32
}

// Event is one normalized input occurrence.
//
// Field usage by type:
//   - KeyDown/KeyUp: Key, Mods
//   - PointerDown/PointerUp: Button, X, Y, Mods
//   - PointerMove: X, Y, DX, DY, Buttons held
//   - Scroll: DX, DY (wheel offsets, positive DY scrolls up/away)
//   - TouchStart/TouchMove/TouchEnd: Touches holds every contact still down after the event
//   - Resize: Width, Height in pixels
//   - PointerLeave: the cursor left the surface, no position
type Event struct {
	Type Type
	// Time is the event timestamp; only differences between events are meaningful.
	Time time.Duration
	Mods common.Modifier

	Key    int
	Button common.MouseButton
	// Buttons is the set of mouse buttons held during a PointerMove, indexed by common.MouseButton.
	Buttons [3]bool

	X, Y   float32
	DX, DY float32

	Touches []Touch

	Width, Height int
}

// Position returns the event's pointer position.
func (e Event) Position() common.Vec2 {
	return common.Vec2{e.X, e.Y}
}

// AnyButton reports whether any mouse button is held during a pointer move.
func (e Event) AnyButton() bool {
	return e.Buttons[0] || e.Buttons[1] || e.Buttons[2]
}

// IsTouch reports whether the event belongs to the touch family.
func (e Event) IsTouch() bool {
	switch e.Type {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return true
	}
	return false
}
