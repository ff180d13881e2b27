package common

import (
	"github.com/chewxy/math32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustum extracts frustum planes from a view-projection matrix using the
// Gribb/Hartmann method. The projection is expected to use OpenGL clip space (z in [-1, 1]),
// which is what mgl32.Perspective produces.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined Projection * View matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustum(viewProj Mat4) Frustum {
	var f Frustum
	row := func(i int) [4]float32 {
		// mgl32 is column-major: element (row i, col j) lives at j*4 + i.
		return [4]float32{viewProj[i], viewProj[4+i], viewProj[8+i], viewProj[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	set := func(idx int, a, b [4]float32, sign float32) {
		p := &f.Planes[idx]
		p.Normal = Vec3{a[0] + sign*b[0], a[1] + sign*b[1], a[2] + sign*b[2]}
		p.Distance = a[3] + sign*b[3]
	}
	set(FrustumLeft, r3, r0, 1)
	set(FrustumRight, r3, r0, -1)
	set(FrustumBottom, r3, r1, 1)
	set(FrustumTop, r3, r1, -1)
	set(FrustumNear, r3, r2, 1)
	set(FrustumFar, r3, r2, -1)

	for i := range f.Planes {
		f.normalizePlane(i)
	}
	return f
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := math32.Sqrt(p.Normal.Dot(p.Normal))
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
}

// IntersectsAABB reports whether any part of the box lies inside the frustum.
// Uses the positive-vertex test: for each plane, the box corner furthest along the
// plane normal must be on the inside. Conservative: may report boxes near corners as visible.
//
// Parameters:
//   - b: the box to test
//
// Returns:
//   - bool: false only if the box is entirely outside one plane
func (f Frustum) IntersectsAABB(b AABB) bool {
	for _, p := range f.Planes {
		var pv Vec3
		for i := 0; i < 3; i++ {
			if p.Normal[i] >= 0 {
				pv[i] = b.Max[i]
			} else {
				pv[i] = b.Min[i]
			}
		}
		if p.Normal.Dot(pv)+p.Distance < 0 {
			return false
		}
	}
	return true
}
