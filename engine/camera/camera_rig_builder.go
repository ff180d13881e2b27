package camera

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
)

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - RigOption: functional option to set the position
func WithPosition(p common.Vec3) RigOption {
	return func(r *rigImpl) {
		r.position = p
	}
}

// WithOrientation sets the initial yaw and pitch. Pitch is clamped to [-π/2, π/2].
//
// Parameters:
//   - yaw: yaw in radians
//   - pitch: pitch in radians
//
// Returns:
//   - RigOption: functional option to set the orientation
func WithOrientation(yaw, pitch float32) RigOption {
	return func(r *rigImpl) {
		r.yaw = yaw
		r.pitch = pitch
	}
}

// WithSpeeds sets the movement speed set. Non-positive entries keep their defaults.
//
// Parameters:
//   - s: the speeds
//
// Returns:
//   - RigOption: functional option to set the speeds
func WithSpeeds(s Speeds) RigOption {
	return func(r *rigImpl) {
		def := DefaultSpeeds()
		r.speeds = Speeds{
			Base:      positiveOr(s.Base, def.Base),
			Precision: positiveOr(s.Precision, def.Precision),
			Fast:      positiveOr(s.Fast, def.Fast),
			Boost:     positiveOr(s.Boost, def.Boost),
		}
	}
}

// WithRotationSpeed sets the radians of rotation per pixel of drag.
//
// Parameters:
//   - speed: rotation speed
//
// Returns:
//   - RigOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		if speed > 0 {
			r.rotationSpeed = speed
		}
	}
}

func positiveOr(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}
