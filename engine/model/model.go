package model

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/chewxy/math32"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	triangles      []Triangle
	bounds         common.AABB
	boundingRadius float32
}

// Model defines the interface for the intersection geometry of a loaded object.
// A Model holds the object's triangles already transformed into world space, together with
// the enclosing box used for broad-phase tests. It is produced by the Loader and is
// read-only once built.
type Model interface {
	// Name retrieves the model identifier, usually the source mesh name.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Triangles retrieves the world-space triangles. The slice must not be modified.
	//
	// Returns:
	//   - []Triangle: the triangles
	Triangles() []Triangle

	// TriangleCount returns the number of triangles.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// Bounds returns the world-space axis-aligned bounding box. Empty models return an empty box.
	//
	// Returns:
	//   - common.AABB: the bounding box
	Bounds() common.AABB

	// BoundingRadius returns the radius of the sphere around the bounds center enclosing every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// IntersectRay tests the ray against the bounds and then every triangle and returns the
	// nearest hit distance.
	//
	// Parameters:
	//   - ray: the world-space ray, unit direction
	//
	// Returns:
	//   - float32: nearest hit distance along the ray
	//   - bool: true if any triangle was hit
	IntersectRay(ray common.Ray) (float32, bool)

	// IntersectRayRange is IntersectRay restricted to hits with tmin <= distance <= tmax.
	//
	// Parameters:
	//   - ray: the world-space ray, unit direction
	//   - tmin: nearest accepted distance
	//   - tmax: farthest accepted distance
	//
	// Returns:
	//   - float32: nearest accepted hit distance
	//   - bool: true if any triangle was hit within the range
	IntersectRayRange(ray common.Ray, tmin, tmax float32) (float32, bool)
}

var _ Model = &model{}

// NewModel creates a new Model instance configured with the provided options.
// Bounds and bounding radius are derived from the triangles.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: a new Model instance
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}

	m.bounds = common.EmptyAABB()
	for _, t := range m.triangles {
		m.bounds = m.bounds.Union(t.Bounds())
	}
	m.boundingRadius = ComputeBoundingRadius(m.triangles, m.bounds.Center())
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Triangles() []Triangle {
	return m.triangles
}

func (m *model) TriangleCount() int {
	return len(m.triangles)
}

func (m *model) Bounds() common.AABB {
	return m.bounds
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) IntersectRay(ray common.Ray) (float32, bool) {
	return m.IntersectRayRange(ray, 0, math32.MaxFloat32)
}

func (m *model) IntersectRayRange(ray common.Ray, tmin, tmax float32) (float32, bool) {
	if len(m.triangles) == 0 {
		return 0, false
	}
	if entry, ok := common.IntersectAABB(ray, m.bounds); !ok || entry > tmax {
		return 0, false
	}

	nearest := tmax
	hit := false
	for _, t := range m.triangles {
		d, ok := common.IntersectTriangle(ray, t.V0, t.V1, t.V2)
		if !ok || d < tmin {
			continue
		}
		if d < nearest || (!hit && d == nearest) {
			nearest = d
			hit = true
		}
	}
	return nearest, hit
}

// ComputeBoundingRadius computes the radius of the sphere centered at center that encloses
// every triangle vertex.
//
// Parameters:
//   - triangles: the triangles to measure
//   - center: the sphere center
//
// Returns:
//   - float32: the maximum distance from center
func ComputeBoundingRadius(triangles []Triangle, center common.Vec3) float32 {
	var maxDistSq float32
	for _, t := range triangles {
		for _, p := range [3]common.Vec3{t.V0, t.V1, t.V2} {
			d := p.Sub(center)
			if distSq := d.Dot(d); distSq > maxDistSq {
				maxDistSq = distSq
			}
		}
	}
	return math32.Sqrt(maxDistSq)
}
