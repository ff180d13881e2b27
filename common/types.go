// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Vec2, Vec3, Vec4 and Mat4 alias the mathgl types so packages do not each import mgl32 for signatures.
type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
	Mat4 = mgl32.Mat4
)

// Viewport is a screen-space rectangle in pixels with a top-left origin.
// It mirrors a client bounding rect: Left/Top is the offset of the drawable area inside the window.
type Viewport struct {
	// Left is the horizontal offset of the viewport in pixels.
	Left float32
	// Top is the vertical offset of the viewport in pixels.
	Top float32
	// Width of the viewport in pixels.
	Width float32
	// Height of the viewport in pixels.
	Height float32
}

// NewViewport returns a viewport at the origin with the given pixel size.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - Viewport: the viewport rectangle
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height)}
}

// Right returns the x coordinate of the right edge.
func (v Viewport) Right() float32 {
	return v.Left + v.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (v Viewport) Bottom() float32 {
	return v.Top + v.Height
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether the pixel (x, y) lies inside the viewport.
func (v Viewport) Contains(x, y float32) bool {
	return x >= v.Left && x <= v.Right() && y >= v.Top && y <= v.Bottom()
}
