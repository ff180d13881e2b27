package picking

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/camera"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Hit describes the nearest selectable object under a pick ray.
type Hit struct {
	Object   scene.Object
	Distance float32
	Point    common.Vec3
}

// Engine defines the interface for ray picking against scene objects.
// An Engine never mutates the objects it is given.
type Engine interface {
	// Pick returns the nearest selectable object intersected by the ray from the camera
	// through (ndcX, ndcY). Scaffolding objects are discarded before distances are compared,
	// so they never hide or win over a selectable object. Hits nearer than the camera's near
	// plane or beyond the far limit are ignored. On equal distance the first object in
	// enumeration order wins.
	//
	// Parameters:
	//   - ndcX, ndcY: normalized device coordinates
	//   - cam: the camera the pointer looks through
	//   - objects: the candidate objects in enumeration order
	//
	// Returns:
	//   - scene.Object: the picked object, nil on a miss
	//   - bool: true on a hit
	Pick(ndcX, ndcY float32, cam camera.Camera, objects []scene.Object) (scene.Object, bool)

	// PickHit is Pick returning the hit distance and world-space point as well.
	//
	// Parameters:
	//   - ndcX, ndcY: normalized device coordinates
	//   - cam: the camera the pointer looks through
	//   - objects: the candidate objects in enumeration order
	//
	// Returns:
	//   - Hit: the hit details, zero on a miss
	//   - bool: true on a hit
	PickHit(ndcX, ndcY float32, cam camera.Camera, objects []scene.Object) (Hit, bool)
}

type engineImpl struct {
	cullingDisabled bool
	farCut          float32
	logger          *zap.Logger
}

var _ Engine = &engineImpl{}

// NewEngine creates a new pick Engine configured with the provided options.
//
// Parameters:
//   - options: variadic list of EngineBuilderOption functions
//
// Returns:
//   - Engine: the pick engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// RayFromNDC builds the world-space pick ray for a camera. The ray starts at the eye and
// points through the unprojected far-plane point for (ndcX, ndcY).
//
// Parameters:
//   - ndcX, ndcY: normalized device coordinates
//   - cam: the camera
//
// Returns:
//   - common.Ray: the ray with a unit direction
func RayFromNDC(ndcX, ndcY float32, cam camera.Camera) common.Ray {
	eye := cam.Position()
	far := unproject(cam.InverseViewProjectionMatrix(), ndcX, ndcY, 1)
	return common.Ray{
		Origin:    eye,
		Direction: far.Sub(eye).Normalize(),
	}
}

func unproject(inv common.Mat4, x, y, z float32) common.Vec3 {
	p := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if p.W() == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p.W())
}

func (e *engineImpl) Pick(ndcX, ndcY float32, cam camera.Camera, objects []scene.Object) (scene.Object, bool) {
	hit, ok := e.PickHit(ndcX, ndcY, cam, objects)
	if !ok {
		return nil, false
	}
	return hit.Object, true
}

func (e *engineImpl) PickHit(ndcX, ndcY float32, cam camera.Camera, objects []scene.Object) (Hit, bool) {
	if cam == nil || !InRange(ndcX, ndcY) {
		return Hit{}, false
	}

	ray := RayFromNDC(ndcX, ndcY, cam)
	tmin := cam.Near()
	tmax := cam.Far()
	if e.farCut > 0 && e.farCut < tmax {
		tmax = e.farCut
	}

	var frustum common.Frustum
	if !e.cullingDisabled {
		frustum = common.ExtractFrustum(cam.ViewProjectionMatrix())
	}

	var best Hit
	found := false
	for _, obj := range objects {
		if obj == nil || !obj.Selectable() {
			continue
		}
		mdl := obj.Model()
		if mdl == nil || mdl.TriangleCount() == 0 {
			continue
		}
		if !e.cullingDisabled && !frustum.IntersectsAABB(mdl.Bounds()) {
			continue
		}

		limit := tmax
		if found {
			limit = best.Distance
		}
		d, ok := mdl.IntersectRayRange(ray, tmin, limit)
		if !ok || (found && d >= best.Distance) {
			continue
		}
		best = Hit{Object: obj, Distance: d, Point: ray.At(d)}
		found = true
	}

	if found {
		e.logger.Debug("pick hit",
			zap.String("object", best.Object.Name()),
			zap.Float32("distance", best.Distance),
		)
	}
	return best, found
}
