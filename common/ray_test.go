package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAABBExtendUnion(t *testing.T) {
	b := EmptyAABB()
	assert.True(t, b.IsEmpty())

	b = b.Extend(mgl32.Vec3{1, 2, 3}).Extend(mgl32.Vec3{-1, 0, 5})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, mgl32.Vec3{-1, 0, 3}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 5}, b.Max)
	assert.Equal(t, mgl32.Vec3{0, 1, 4}, b.Center())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, b.Size())

	u := b.Union(EmptyAABB())
	assert.Equal(t, b, u)
	u = b.Union(AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{10, 0, 0}})
	assert.Equal(t, float32(10), u.Max.X())
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{-1, -1, -6}, Max: mgl32.Vec3{1, 1, -4}}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		dist float32
	}{
		{"straight on", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}}, true, 4},
		{"behind origin", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}}, false, 0},
		{"parallel outside slab", Ray{mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 0, -1}}, false, 0},
		{"origin inside", Ray{mgl32.Vec3{0, 0, -5}, mgl32.Vec3{1, 0, 0}}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := IntersectAABB(tt.ray, box)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.dist, d, 1e-5)
			}
		})
	}
}

func TestIntersectTriangle(t *testing.T) {
	v0 := mgl32.Vec3{-1, -1, -3}
	v1 := mgl32.Vec3{1, -1, -3}
	v2 := mgl32.Vec3{0, 1, -3}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		dist float32
	}{
		{"center", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}}, true, 3},
		{"back face", Ray{mgl32.Vec3{0, 0, -6}, mgl32.Vec3{0, 0, 1}}, true, 3},
		{"outside edge", Ray{mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 0, -1}}, false, 0},
		{"parallel", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}}, false, 0},
		{"behind", Ray{mgl32.Vec3{0, 0, -4}, mgl32.Vec3{0, 0, -1}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := IntersectTriangle(tt.ray, v0, v1, v2)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.dist, d, 1e-5)
				assert.InDelta(t, -3, tt.ray.At(d).Z(), 1e-5)
			}
		})
	}
}
