// Package gesture turns raw pointer, touch and wheel events into camera deltas and pick
// requests.
//
// A session starts when the first contact goes down and ends when every contact is released
// or the platform cancels it. One mouse button or one finger drags (rotates the view); two
// fingers either pinch (move along the view direction) or pan (slide sideways and vertically).
// Which of the two is decided once from the angle between the fingers when the second one
// lands and does not change until the session ends.
package gesture

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/pkg/errors"
)

// Mode is the gesture session state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModePinching
	ModePanning
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModePinching:
		return "pinching"
	case ModePanning:
		return "panning"
	default:
		return "idle"
	}
}

// PickPolicy decides which primary contact counts as a confirmed pick.
type PickPolicy int

const (
	// PickDouble confirms a pick on the second primary contact of the same kind within the
	// double-action window. No drag starts from the confirming contact.
	PickDouble PickPolicy = iota
	// PickSingle confirms a pick when a primary contact is released without moving past the
	// drag dead zone.
	PickSingle
)

func (p PickPolicy) String() string {
	if p == PickSingle {
		return "single"
	}
	return "double"
}

// ParsePickPolicy converts a configuration string into a PickPolicy.
//
// Parameters:
//   - s: "double" or "single", case-insensitive
//
// Returns:
//   - PickPolicy: the policy
//   - error: if s names no policy
func ParsePickPolicy(s string) (PickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double", "":
		return PickDouble, nil
	case "single":
		return PickSingle, nil
	}
	return PickDouble, errors.Errorf("gesture: unknown pick policy %q", s)
}

// Deltas are camera changes accumulated since the last Drain.
type Deltas struct {
	// Yaw and Pitch are rotation deltas in radians.
	Yaw, Pitch float32
	// Forward, Right and Up are translation distances in world units.
	Forward, Right, Up float32
}

// IsZero reports whether the deltas would not move the camera.
func (d Deltas) IsZero() bool {
	return d == Deltas{}
}

// PickRequest is a confirmed pick at a client pixel position.
type PickRequest struct {
	Position common.Vec2
	Touch    bool
}

// Result is the per-event outcome of Handle.
type Result struct {
	// Pick is set when the event confirmed a pick.
	Pick *PickRequest
}

// Interpreter defines the interface for the gesture state machine.
// Interpreter is the only writer of the gesture session. It is not safe for concurrent use.
type Interpreter interface {
	// Handle feeds one input event. Key and resize events are ignored.
	//
	// Parameters:
	//   - ev: the event
	//
	// Returns:
	//   - Result: a pick request if the event confirmed one
	Handle(ev input.Event) Result

	// Drain returns the deltas accumulated since the previous Drain and resets them.
	//
	// Returns:
	//   - Deltas: accumulated deltas
	Drain() Deltas

	// Mode returns the current session mode.
	//
	// Returns:
	//   - Mode: the mode
	Mode() Mode

	// Active reports whether any contact is down, including contacts that are being ignored
	// after a degenerate two-finger session.
	//
	// Returns:
	//   - bool: true while a session or an ignored contact is in progress
	Active() bool

	// Hover returns the last pointer position seen with no button held.
	//
	// Returns:
	//   - common.Vec2: pointer position in client pixels
	//   - bool: false until the pointer has moved over the viewport, and again after it leaves
	Hover() (common.Vec2, bool)

	// Cancel ends the session and discards its undrained deltas.
	Cancel()

	// Policy returns the configured pick policy.
	//
	// Returns:
	//   - PickPolicy: the policy
	Policy() PickPolicy
}
