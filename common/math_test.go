package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClampPitch(t *testing.T) {
	assert.Equal(t, HalfPi, ClampPitch(10))
	assert.Equal(t, -HalfPi, ClampPitch(-10))
	assert.Equal(t, float32(0.3), ClampPitch(0.3))
}

func TestForwardFromYawPitch(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"identity looks down -Z", 0, 0, mgl32.Vec3{0, 0, -1}},
		{"quarter turn left", HalfPi, 0, mgl32.Vec3{-1, 0, 0}},
		{"straight up", 0, HalfPi, mgl32.Vec3{0, 1, 0}},
		{"half turn", math32.Pi, 0, mgl32.Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForwardFromYawPitch(tt.yaw, tt.pitch)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.want[i], got[i], 1e-5)
			}
		})
	}
}

func TestRightIsPerpendicularToForward(t *testing.T) {
	for _, yaw := range []float32{0, 0.7, -2.1, 3} {
		f := ForwardFromYawPitch(yaw, 0.4)
		r := RightFromYaw(yaw)
		assert.InDelta(t, 0, f.Dot(r), 1e-5)
		// right = forward x up for a level view
		want := ForwardFromYawPitch(yaw, 0).Cross(WorldUp)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, want[i], r[i], 1e-5)
		}
	}
}

func TestYawPitchFromDirectionRoundTrip(t *testing.T) {
	for _, c := range [][2]float32{{0, 0}, {0.5, 0.2}, {-2.5, -1.0}, {1.2, 1.4}} {
		yaw, pitch := YawPitchFromDirection(ForwardFromYawPitch(c[0], c[1]).Mul(3))
		assert.InDelta(t, c[0], yaw, 1e-4)
		assert.InDelta(t, c[1], pitch, 1e-4)
	}

	yaw, pitch := YawPitchFromDirection(mgl32.Vec3{})
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
}
