package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/chewxy/math32"
)

// frameDistanceFactor pulls the framing distance in from the full fit-to-fov distance.
const frameDistanceFactor = 0.3

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mu *sync.Mutex

	position common.Vec3
	yaw      float32
	pitch    float32

	forward common.Vec3
	right   common.Vec3

	speeds        Speeds
	speed         float32
	rotationSpeed float32
}

// Compile-time interface compliance check
var _ Rig = &rigImpl{}

// NewRig creates a new rig at the origin looking down -Z with the default speeds.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mu:            &sync.Mutex{},
		speeds:        DefaultSpeeds(),
		rotationSpeed: 0.005,
	}
	for _, option := range options {
		option(r)
	}
	r.pitch = common.ClampPitch(r.pitch)
	r.speed = r.speeds.Base
	r.updateBasis()
	return r
}

// updateBasis recomputes forward/right from yaw and pitch.
// Caller must hold the mutex.
func (r *rigImpl) updateBasis() {
	r.forward = common.ForwardFromYawPitch(r.yaw, r.pitch)
	r.right = common.RightFromYaw(r.yaw)
}

func (r *rigImpl) Position() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *rigImpl) SetPosition(p common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = p
}

func (r *rigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *rigImpl) Pitch() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pitch
}

func (r *rigImpl) SetOrientation(yaw, pitch float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw = yaw
	r.pitch = common.ClampPitch(pitch)
	r.updateBasis()
}

func (r *rigImpl) ApplyRotation(dYaw, dPitch float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw += dYaw
	r.pitch = common.ClampPitch(r.pitch + dPitch)
}

func (r *rigImpl) ApplyTranslation(forward, right, up float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = r.position.
		Add(r.forward.Mul(forward)).
		Add(r.right.Mul(right)).
		Add(common.WorldUp.Mul(up))
}

func (r *rigImpl) UpdateBasis() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateBasis()
}

func (r *rigImpl) Forward() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forward
}

func (r *rigImpl) Right() common.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.right
}

func (r *rigImpl) LookAt(target common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookAt(target)
}

// lookAt orients toward target. Caller must hold the mutex.
func (r *rigImpl) lookAt(target common.Vec3) {
	dir := target.Sub(r.position)
	if dir.Len() < 1e-8 {
		return
	}
	r.yaw, r.pitch = common.YawPitchFromDirection(dir)
	r.updateBasis()
}

func (r *rigImpl) FrameBounds(bounds common.AABB, fov float32) {
	if bounds.IsEmpty() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	center := bounds.Center()
	size := bounds.Size()
	maxDim := max(size.X(), size.Y(), size.Z())
	dist := math32.Abs(maxDim/math32.Sin(fov/2)) * frameDistanceFactor

	r.position = common.Vec3{center.X(), center.Y(), dist}
	r.lookAt(center)
}

func (r *rigImpl) SelectSpeed(key int, mods common.Modifier) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case mods.Has(common.ModShift) && key == common.KeySpace:
		r.speed = r.speeds.Boost
	case mods.Has(common.ModShift):
		r.speed = r.speeds.Fast
	case mods.Has(common.ModAlt):
		r.speed = r.speeds.Precision
	default:
		r.speed = r.speeds.Base
	}
	return r.speed
}

func (r *rigImpl) ResetSpeed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speed = r.speeds.Base
}

func (r *rigImpl) MovementSpeed() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.speed
}

func (r *rigImpl) Speeds() Speeds {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.speeds
}

func (r *rigImpl) RotationSpeed() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotationSpeed
}
