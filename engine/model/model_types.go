package model

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform represents a decomposed node transform.
type Transform struct {
	// Translation is the position offset.
	Translation [3]float32

	// Rotation is the orientation as a quaternion (x, y, z, w).
	Rotation [4]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32
}

// IdentityTransform returns a transform with no translation, identity rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

// Matrix composes the transform into a column-major T * R * S matrix.
//
// Returns:
//   - common.Mat4: the composed matrix
func (t Transform) Matrix() common.Mat4 {
	q := mgl32.Quat{W: t.Rotation[3], V: mgl32.Vec3{t.Rotation[0], t.Rotation[1], t.Rotation[2]}}
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}
	tr := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	s := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(q.Normalize().Mat4()).Mul4(s)
}

// Triangle is a single world-space triangle used for ray intersection.
type Triangle struct {
	V0, V1, V2 common.Vec3
}

// Bounds returns the axis-aligned box enclosing the triangle.
func (t Triangle) Bounds() common.AABB {
	return common.EmptyAABB().Extend(t.V0).Extend(t.V1).Extend(t.V2)
}

// Transform returns the triangle with every vertex multiplied by m.
//
// Parameters:
//   - m: the transform to apply
//
// Returns:
//   - Triangle: the transformed triangle
func (t Triangle) Transform(m common.Mat4) Triangle {
	return Triangle{
		V0: mgl32.TransformCoordinate(t.V0, m),
		V1: mgl32.TransformCoordinate(t.V1, m),
		V2: mgl32.TransformCoordinate(t.V2, m),
	}
}

// Degenerate reports whether the triangle has (near) zero area and can never be hit.
func (t Triangle) Degenerate() bool {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0)).Len() < 1e-12
}
