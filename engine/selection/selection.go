// Package selection implements the pick-and-highlight state machine.
//
// At most one object is highlighted at a time. Highlighting assigns a fresh clone of a shared
// highlight material; un-highlighting assigns a fresh clone of the object's pristine material
// from a table captured once at load. While the overlay is visible the current selection is
// pinned: hover requests are ignored until a forced select or clear.
package selection

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
)

// State is the selection state.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StateSelected:
		return "selected"
	default:
		return "idle"
	}
}

// Cursor is the collaborator that shows the pointer affordance.
type Cursor interface {
	SetCursor(shape common.CursorShape)
}

// Controller defines the interface for the selection state machine.
// Controller is the only writer of the selection state and of the highlight material
// assignments. It is not safe for concurrent use; it runs on the interaction loop.
type Controller interface {
	// RegisterMaterials captures each object's current material as its pristine material.
	// Only the first call has an effect; the table is never modified afterwards.
	//
	// Parameters:
	//   - objects: the scene objects
	RegisterMaterials(objects []scene.Object)

	// RequestHover highlights the object under the pointer, or clears the highlight for nil.
	// Ignored while the overlay is visible. No-op if the object is already highlighted.
	//
	// Parameters:
	//   - obj: the hovered object or nil
	RequestHover(obj scene.Object)

	// RequestSelect highlights the object and shows its record in the overlay next to the
	// pointer. Gated like RequestHover unless force is set. An object without a record is
	// handled as a hover: it is highlighted, nothing is shown, and force is ignored.
	// A nil object is treated as Clear(force).
	//
	// Parameters:
	//   - obj: the selected object
	//   - force: bypass the overlay gate
	//   - at: pointer position in client pixels, used to place the overlay
	RequestSelect(obj scene.Object, force bool, at common.Vec2)

	// Clear restores the highlighted object and returns to idle. Gated like RequestHover
	// unless force is set; a forced clear also hides the overlay.
	//
	// Parameters:
	//   - force: bypass the overlay gate
	Clear(force bool)

	// State returns the current selection state.
	//
	// Returns:
	//   - State: idle, hovering or selected
	State() State

	// Current returns the highlighted object, nil when idle.
	//
	// Returns:
	//   - scene.Object: the highlighted object or nil
	Current() scene.Object

	// SavedMaterial returns a clone of the pristine material captured for an object.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - material.Material: a clone of the saved material
	//   - bool: false if nothing was captured for the object
	SavedMaterial(name string) (material.Material, bool)

	// SetViewport updates the rectangle the overlay is kept inside.
	//
	// Parameters:
	//   - vp: the viewport
	SetViewport(vp common.Viewport)
}
