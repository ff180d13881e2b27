package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HalfPi is the pitch limit for first-person look: straight up or straight down.
const HalfPi float32 = math32.Pi / 2

// WorldUp is the +Y axis; vertical camera movement is always along it.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPitch limits a pitch angle to [-π/2, π/2] so the view never inverts past vertical.
func ClampPitch(pitch float32) float32 {
	return Clamp(pitch, -HalfPi, HalfPi)
}

// ForwardFromYawPitch returns the unit view direction for a yaw-then-pitch orientation with no roll.
// Yaw 0 / pitch 0 looks down -Z; positive yaw turns left (counter-clockwise seen from +Y);
// positive pitch looks up. Matches an Euler 'YXZ' rotation applied to (0, 0, -1).
//
// Parameters:
//   - yaw: rotation around +Y in radians
//   - pitch: rotation around the local X axis in radians
//
// Returns:
//   - Vec3: unit forward vector
func ForwardFromYawPitch(yaw, pitch float32) Vec3 {
	cp := math32.Cos(pitch)
	return mgl32.Vec3{
		-math32.Sin(yaw) * cp,
		math32.Sin(pitch),
		-math32.Cos(yaw) * cp,
	}
}

// RightFromYaw returns the horizontal right vector for a yaw angle.
// It only depends on yaw, so it stays well-defined when looking straight up or down.
func RightFromYaw(yaw float32) Vec3 {
	return mgl32.Vec3{math32.Cos(yaw), 0, -math32.Sin(yaw)}
}

// YawPitchFromDirection inverts ForwardFromYawPitch for a (not necessarily unit) direction.
// A zero-length direction yields (0, 0).
//
// Parameters:
//   - dir: look direction
//
// Returns:
//   - yaw, pitch: angles in radians, pitch within [-π/2, π/2]
func YawPitchFromDirection(dir Vec3) (yaw, pitch float32) {
	l := dir.Len()
	if l < 1e-8 {
		return 0, 0
	}
	d := dir.Mul(1 / l)
	pitch = math32.Asin(Clamp(d.Y(), -1, 1))
	if math32.Abs(d.X()) < 1e-8 && math32.Abs(d.Z()) < 1e-8 {
		return 0, ClampPitch(pitch)
	}
	yaw = math32.Atan2(-d.X(), -d.Z())
	return yaw, ClampPitch(pitch)
}
