// Package picking turns pointer positions into the object under the pointer.
//
// Picking is two steps: Project converts client pixels to normalized device coordinates
// for a viewport, and an Engine casts a ray from the camera through that point against the
// scene's selectable objects.
package picking

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
)

// Project converts a client-space pixel position into normalized device coordinates for the
// given viewport: x grows to the right and y grows upward, both in [-1, 1] inside the viewport.
// Positions outside the viewport produce values outside that range. A viewport with no area
// projects everything to the center.
//
// Parameters:
//   - clientX, clientY: pointer position in client pixels (top-left origin)
//   - vp: the viewport rectangle
//
// Returns:
//   - ndcX, ndcY: normalized device coordinates
func Project(clientX, clientY float32, vp common.Viewport) (ndcX, ndcY float32) {
	if vp.Empty() {
		return 0, 0
	}
	ndcX = (clientX-vp.Left)/vp.Width*2 - 1
	ndcY = -((clientY-vp.Top)/vp.Height)*2 + 1
	return ndcX, ndcY
}

// InRange reports whether normalized device coordinates fall inside the viewport.
func InRange(ndcX, ndcY float32) bool {
	return ndcX >= -1 && ndcX <= 1 && ndcY >= -1 && ndcY <= 1
}
