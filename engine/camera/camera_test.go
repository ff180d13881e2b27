package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got common.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, mgl32.DegToRad(75), c.Fov(), 1e-6)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(1000), c.Far())
	assert.Nil(t, c.Rig())
	assert.Equal(t, common.Vec3{}, c.Position())
}

func TestCameraSetAspectIgnoresInvalid(t *testing.T) {
	c := NewCamera(WithAspect(2))
	before := c.ProjectionMatrix()
	c.SetAspect(0)
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, before, c.ProjectionMatrix())

	c.SetAspect(0.5)
	assert.Equal(t, float32(0.5), c.Aspect())
	assert.NotEqual(t, before, c.ProjectionMatrix())
}

func TestCameraViewFollowsRig(t *testing.T) {
	rig := NewRig(WithPosition(common.Vec3{1, 2, 3}))
	c := NewCamera(WithRig(rig), WithClipPlanes(0.1, 100))

	// A point straight ahead of the eye projects to the screen center.
	ahead := mgl32.Vec3{1, 2, -2}
	clip := c.ViewProjectionMatrix().Mul4x1(ahead.Vec4(1))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-5)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-5)

	rig.SetOrientation(common.HalfPi, 0)
	c.Update()
	// Turned left: -X is now straight ahead.
	left := mgl32.Vec3{-4, 2, 3}
	clip = c.ViewProjectionMatrix().Mul4x1(left.Vec4(1))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-4)
}

func TestCameraInverseViewProjection(t *testing.T) {
	c := NewCamera(WithRig(NewRig(WithOrientation(0.3, -0.2))), WithAspect(1.5))
	vp, inv := c.ViewProjectionMatrix(), c.InverseViewProjectionMatrix()

	// NDC points survive unproject then project.
	for _, ndc := range []mgl32.Vec3{{0, 0, 0}, {0.3, -0.4, 0.5}, {-0.8, 0.7, 0.2}} {
		world := inv.Mul4x1(ndc.Vec4(1))
		world = world.Mul(1 / world.W())
		back := vp.Mul4x1(world)
		assert.InDelta(t, ndc.X(), back.X()/back.W(), 1e-3, "x of %v", ndc)
		assert.InDelta(t, ndc.Y(), back.Y()/back.W(), 1e-3, "y of %v", ndc)
		assert.InDelta(t, ndc.Z(), back.Z()/back.W(), 1e-3, "z of %v", ndc)
	}
}

func TestCameraValidAtVerticalPitch(t *testing.T) {
	c := NewCamera(WithRig(NewRig(WithOrientation(0, common.HalfPi))))
	for _, v := range c.ViewMatrix() {
		assert.False(t, math32.IsNaN(v))
	}
}

func TestRigDefaults(t *testing.T) {
	r := NewRig()
	assert.Equal(t, float32(0.2), r.MovementSpeed())
	assert.Equal(t, float32(0.005), r.RotationSpeed())
	assertVec3(t, common.Vec3{0, 0, -1}, r.Forward())
	assertVec3(t, common.Vec3{1, 0, 0}, r.Right())
}

func TestRigKeyWOneTickAtBaseSpeed(t *testing.T) {
	r := NewRig()
	r.UpdateBasis()
	r.ApplyTranslation(r.MovementSpeed(), 0, 0)
	assertVec3(t, common.Vec3{0, 0, -0.2}, r.Position())
}

func TestRigPitchClamped(t *testing.T) {
	r := NewRig()
	for i := 0; i < 100; i++ {
		r.ApplyRotation(0.1, 0.5)
		require.LessOrEqual(t, r.Pitch(), common.HalfPi)
	}
	assert.Equal(t, common.HalfPi, r.Pitch())
	for i := 0; i < 100; i++ {
		r.ApplyRotation(-0.1, -0.5)
		require.GreaterOrEqual(t, r.Pitch(), -common.HalfPi)
	}
	assert.Equal(t, -common.HalfPi, r.Pitch())

	r.SetOrientation(0, 7)
	assert.Equal(t, common.HalfPi, r.Pitch())
	assert.Equal(t, common.HalfPi, NewRig(WithOrientation(0, 3)).Pitch())
}

func TestRigTranslationUsesBasis(t *testing.T) {
	r := NewRig(WithOrientation(common.HalfPi, 0))
	r.ApplyTranslation(1, 0, 0)
	assertVec3(t, common.Vec3{-1, 0, 0}, r.Position())

	r.ApplyTranslation(0, 2, 0)
	assertVec3(t, common.Vec3{-1, 0, -2}, r.Position())

	// Up is world +Y regardless of pitch.
	r.SetOrientation(0, 1)
	r.ApplyTranslation(0, 0, 3)
	assertVec3(t, common.Vec3{-1, 3, -2}, r.Position())
}

func TestRigBasisOnlyRefreshedByUpdate(t *testing.T) {
	r := NewRig()
	r.ApplyRotation(common.HalfPi, 0)
	assertVec3(t, common.Vec3{0, 0, -1}, r.Forward())
	r.UpdateBasis()
	assertVec3(t, common.Vec3{-1, 0, 0}, r.Forward())
}

func TestRigSelectSpeed(t *testing.T) {
	tests := []struct {
		name string
		key  int
		mods common.Modifier
		want float32
	}{
		{"plain", common.KeyW, 0, 0.2},
		{"shift", common.KeyW, common.ModShift, 0.4},
		{"shift space", common.KeySpace, common.ModShift, 1.2},
		{"space alone", common.KeySpace, 0, 0.2},
		{"alt", common.KeyW, common.ModAlt, 0.1},
		{"shift wins over alt", common.KeyW, common.ModShift | common.ModAlt, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig()
			assert.Equal(t, tt.want, r.SelectSpeed(tt.key, tt.mods))
			assert.Equal(t, tt.want, r.MovementSpeed())
		})
	}
}

func TestRigSpeedNotAccumulated(t *testing.T) {
	r := NewRig()
	r.SelectSpeed(common.KeySpace, common.ModShift)
	r.SelectSpeed(common.KeyW, common.ModAlt)
	assert.Equal(t, float32(0.1), r.MovementSpeed())
	r.ResetSpeed()
	assert.Equal(t, float32(0.2), r.MovementSpeed())
}

func TestRigWithSpeeds(t *testing.T) {
	r := NewRig(WithSpeeds(Speeds{Base: 1, Boost: 5}), WithRotationSpeed(0.01))
	s := r.Speeds()
	assert.Equal(t, float32(1), s.Base)
	assert.Equal(t, float32(0.1), s.Precision)
	assert.Equal(t, float32(0.4), s.Fast)
	assert.Equal(t, float32(5), s.Boost)
	assert.Equal(t, float32(1), r.MovementSpeed())
	assert.Equal(t, float32(0.01), r.RotationSpeed())
}

func TestRigLookAt(t *testing.T) {
	r := NewRig(WithPosition(common.Vec3{0, 0, 5}))
	r.LookAt(common.Vec3{0, 5, 0})
	assertVec3(t, common.Vec3{0, math32.Sqrt(0.5), -math32.Sqrt(0.5)}, r.Forward())

	yaw, pitch := r.Yaw(), r.Pitch()
	r.LookAt(common.Vec3{0, 0, 5})
	assert.Equal(t, yaw, r.Yaw())
	assert.Equal(t, pitch, r.Pitch())
}

func TestRigFrameBounds(t *testing.T) {
	r := NewRig()
	bounds := common.AABB{Min: common.Vec3{-2, 0, -1}, Max: common.Vec3{2, 2, 1}}
	fov := mgl32.DegToRad(75)
	r.FrameBounds(bounds, fov)

	wantZ := 4 / math32.Sin(fov/2) * 0.3
	assertVec3(t, common.Vec3{0, 1, wantZ}, r.Position())
	assertVec3(t, common.Vec3{0, 0, -1}, r.Forward())

	before := r.Position()
	r.FrameBounds(common.EmptyAABB(), fov)
	assert.Equal(t, before, r.Position())
}
