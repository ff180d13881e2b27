package model

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns two triangles forming a unit square in the XY plane at depth z.
func quad(z float32) []Triangle {
	return []Triangle{
		{V0: mgl32.Vec3{-0.5, -0.5, z}, V1: mgl32.Vec3{0.5, -0.5, z}, V2: mgl32.Vec3{0.5, 0.5, z}},
		{V0: mgl32.Vec3{-0.5, -0.5, z}, V1: mgl32.Vec3{0.5, 0.5, z}, V2: mgl32.Vec3{-0.5, 0.5, z}},
	}
}

func TestNewModelBounds(t *testing.T) {
	m := NewModel(WithName("wall"), WithTriangles(quad(-2)...))
	require.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, "wall", m.Name())
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -2}, m.Bounds().Min)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, -2}, m.Bounds().Max)
	assert.InDelta(t, math32.Sqrt(0.5), m.BoundingRadius(), 1e-5)
}

func TestWithTrianglesDropsDegenerate(t *testing.T) {
	flat := Triangle{V0: mgl32.Vec3{0, 0, 0}, V1: mgl32.Vec3{1, 0, 0}, V2: mgl32.Vec3{2, 0, 0}}
	m := NewModel(WithTriangles(flat))
	assert.Equal(t, 0, m.TriangleCount())
	assert.True(t, m.Bounds().IsEmpty())
}

func TestIntersectRay(t *testing.T) {
	m := NewModel(WithTriangles(append(quad(-2), quad(-5)...)...))

	tests := []struct {
		name string
		ray  common.Ray
		hit  bool
		dist float32
	}{
		{"hits nearest face", common.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}, true, 2},
		{"misses beside", common.Ray{Origin: mgl32.Vec3{2, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}, false, 0},
		{"pointing away", common.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}}, false, 0},
		{"from between faces", common.Ray{Origin: mgl32.Vec3{0.1, 0.1, -3}, Direction: mgl32.Vec3{0, 0, -1}}, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := m.IntersectRay(tt.ray)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.dist, d, 1e-5)
			}
		})
	}
}

func TestIntersectRayRange(t *testing.T) {
	m := NewModel(WithTriangles(append(quad(-2), quad(-5)...)...))
	ray := common.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	d, ok := m.IntersectRayRange(ray, 3, 10)
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)

	_, ok = m.IntersectRayRange(ray, 0, 1)
	assert.False(t, ok)
}

func TestTransformMatrix(t *testing.T) {
	tr := IdentityTransform()
	tr.Translation = [3]float32{1, 2, 3}
	tr.Scale = [3]float32{2, 2, 2}
	// 90 degrees about +Y
	s := math32.Sin(math32.Pi / 4)
	tr.Rotation = [4]float32{0, s, 0, math32.Cos(math32.Pi / 4)}

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 1, p.Z(), 1e-5)
}

func TestTriangleTransform(t *testing.T) {
	tri := quad(0)[0].Transform(mgl32.Translate3D(0, 0, -4))
	assert.Equal(t, float32(-4), tri.V0.Z())
	assert.Equal(t, float32(-4), tri.Bounds().Max.Z())
}
