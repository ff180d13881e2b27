// Package overlay defines the information panel that displays an object's record next to
// the pointer, and the placement rule that keeps it on screen.
package overlay

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
)

// Title is the heading shown above the record fields.
const Title = "Object Info"

// Placement is the top-left corner of the panel in client pixels.
type Placement struct {
	X, Y float32
}

// Info is the payload of a show request.
type Info struct {
	// Object is the name of the selected object.
	Object string
	// Fields are the record's labelled display values, absent ones already substituted.
	Fields []record.Field
	// Placement is where the panel should be drawn.
	Placement Placement
}

// NewInfo builds the show payload for an object's record.
//
// Parameters:
//   - object: the object name
//   - r: the object's record
//   - at: the panel placement
//
// Returns:
//   - Info: the payload
func NewInfo(object string, r record.Record, at Placement) Info {
	return Info{Object: object, Fields: r.Fields(), Placement: at}
}

// Value returns the display value for a label, or common.NotSpecified if the label is unknown.
func (i Info) Value(label string) string {
	for _, f := range i.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	return common.NotSpecified
}

// Overlay is the collaborator that actually displays record info. Its visibility is the
// gate that pins a selection: while it is visible, hover no longer changes the highlight.
type Overlay interface {
	// Visible reports whether the panel is currently shown.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// Show displays the payload, replacing any previous content.
	//
	// Parameters:
	//   - info: the payload
	Show(info Info)

	// Hide removes the panel. Hiding a hidden panel is a no-op.
	Hide()

	// Size returns the panel's size in pixels, used for placement.
	//
	// Returns:
	//   - w, h: panel width and height
	Size() (w, h float32)
}

// Place positions a w*h panel next to the pointer at (x, y). The panel goes below-right of
// the pointer by offset, flips to the left or above when it would pass the right or bottom
// viewport edge, and is finally clamped inside the viewport.
//
// Parameters:
//   - x, y: pointer position in client pixels
//   - w, h: panel size
//   - vp: the viewport the panel must stay within
//   - offset: gap between pointer and panel
//
// Returns:
//   - Placement: the panel's top-left corner
func Place(x, y, w, h float32, vp common.Viewport, offset float32) Placement {
	px := x + offset
	if px+w > vp.Right() {
		px = x - w - offset
	}
	py := y + offset
	if py+h > vp.Bottom() {
		py = y - h - offset
	}

	px = common.Clamp(px, vp.Left, max(vp.Left, vp.Right()-w))
	py = common.Clamp(py, vp.Top, max(vp.Top, vp.Bottom()-h))
	return Placement{X: px, Y: py}
}
