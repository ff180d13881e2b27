package camera

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
)

// Speeds holds the four movement speeds chosen between by modifier keys, in world units per tick.
type Speeds struct {
	// Base is used with no modifier.
	Base float32
	// Precision is used while Alt is held.
	Precision float32
	// Fast is used while Shift is held.
	Fast float32
	// Boost is used when Space is pressed with Shift held.
	Boost float32
}

// DefaultSpeeds returns the stock movement speeds.
func DefaultSpeeds() Speeds {
	return Speeds{Base: 0.2, Precision: 0.1, Fast: 0.4, Boost: 1.2}
}

// Rig defines the interface for the first-person camera pose.
// A Rig owns the eye position and a yaw/pitch orientation with no roll. Pitch is always
// kept within [-π/2, π/2]. Forward and right come from a basis cached by UpdateBasis, which
// the interaction loop calls once per tick before any movement is applied; vertical movement
// is always along world +Y.
type Rig interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - common.Vec3: world-space eye position
	Position() common.Vec3

	// SetPosition sets the eye position directly.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p common.Vec3)

	// Yaw returns the rotation around world +Y in radians.
	//
	// Returns:
	//   - float32: yaw
	Yaw() float32

	// Pitch returns the rotation around the local X axis in radians.
	//
	// Returns:
	//   - float32: pitch within [-π/2, π/2]
	Pitch() float32

	// SetOrientation sets yaw and pitch directly; pitch is clamped.
	//
	// Parameters:
	//   - yaw: yaw in radians
	//   - pitch: pitch in radians
	SetOrientation(yaw, pitch float32)

	// ApplyRotation adds deltas to yaw and pitch and clamps pitch to [-π/2, π/2].
	//
	// Parameters:
	//   - dYaw: yaw delta in radians
	//   - dPitch: pitch delta in radians
	ApplyRotation(dYaw, dPitch float32)

	// ApplyTranslation moves the eye along the cached basis: forward along the view direction,
	// right along the horizontal right vector, up along world +Y.
	//
	// Parameters:
	//   - forward: distance along the view direction
	//   - right: distance along the right vector
	//   - up: distance along world +Y
	ApplyTranslation(forward, right, up float32)

	// UpdateBasis recomputes the cached forward and right vectors from yaw and pitch.
	UpdateBasis()

	// Forward returns the cached unit view direction.
	//
	// Returns:
	//   - common.Vec3: forward vector
	Forward() common.Vec3

	// Right returns the cached unit right vector. It is always horizontal.
	//
	// Returns:
	//   - common.Vec3: right vector
	Right() common.Vec3

	// LookAt orients the rig toward a world-space point. Looking at the eye position is a no-op.
	//
	// Parameters:
	//   - target: the point to face
	LookAt(target common.Vec3)

	// FrameBounds positions the rig so that a box is in view: the eye goes to
	// (center.x, center.y, |maxDim / sin(fov/2)| * 0.3) and looks at the box center.
	// Empty boxes are ignored.
	//
	// Parameters:
	//   - bounds: world-space box to frame
	//   - fov: the camera's vertical field of view in radians
	FrameBounds(bounds common.AABB, fov float32)

	// SelectSpeed picks the movement speed for a key press from the held modifiers:
	// Space with Shift selects boost, Shift fast, Alt precision, otherwise base.
	// The selection replaces the previous one; it is never accumulated.
	//
	// Parameters:
	//   - key: the pressed key code
	//   - mods: modifiers held during the press
	//
	// Returns:
	//   - float32: the selected speed
	SelectSpeed(key int, mods common.Modifier) float32

	// ResetSpeed restores the base speed. Called on every key release.
	ResetSpeed()

	// MovementSpeed returns the currently selected movement speed.
	//
	// Returns:
	//   - float32: world units per tick
	MovementSpeed() float32

	// Speeds returns the configured speed set.
	//
	// Returns:
	//   - Speeds: the speed set
	Speeds() Speeds

	// RotationSpeed returns the radians of rotation per pixel of drag.
	//
	// Returns:
	//   - float32: rotation speed
	RotationSpeed() float32
}
