package picking

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/camera"
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panel builds a 1x1 square facing the camera, centered at (x, y, z).
func panel(name string, x, y, z float32, options ...scene.ObjectBuilderOption) scene.Object {
	tris := []model.Triangle{
		{V0: mgl32.Vec3{x - 0.5, y - 0.5, z}, V1: mgl32.Vec3{x + 0.5, y - 0.5, z}, V2: mgl32.Vec3{x + 0.5, y + 0.5, z}},
		{V0: mgl32.Vec3{x - 0.5, y - 0.5, z}, V1: mgl32.Vec3{x + 0.5, y + 0.5, z}, V2: mgl32.Vec3{x - 0.5, y + 0.5, z}},
	}
	opts := append([]scene.ObjectBuilderOption{scene.WithModel(model.NewModel(model.WithTriangles(tris...)))}, options...)
	return scene.NewObject(name, opts...)
}

func originCamera() camera.Camera {
	return camera.NewCamera(camera.WithRig(camera.NewRig()), camera.WithClipPlanes(0.1, 100))
}

func TestProject(t *testing.T) {
	vp := common.Viewport{Left: 100, Top: 50, Width: 800, Height: 600}

	tests := []struct {
		name       string
		x, y       float32
		wantX, wantY float32
	}{
		{"top left", 100, 50, -1, 1},
		{"center", 500, 350, 0, 0},
		{"bottom right", 900, 650, 1, -1},
		{"outside left", 0, 350, -1.25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Project(tt.x, tt.y, vp)
			assert.InDelta(t, tt.wantX, x, 1e-6)
			assert.InDelta(t, tt.wantY, y, 1e-6)
		})
	}

	x, y := Project(10, 10, common.Viewport{})
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 0))
	assert.True(t, InRange(-1, 1))
	assert.False(t, InRange(1.01, 0))
}

func TestRayFromNDC(t *testing.T) {
	cam := originCamera()
	ray := RayFromNDC(0, 0, cam)
	assert.Equal(t, common.Vec3{}, ray.Origin)
	assert.InDelta(t, -1, ray.Direction.Z(), 1e-5)
	assert.InDelta(t, 1, ray.Direction.Len(), 1e-5)

	right := RayFromNDC(1, 0, cam)
	assert.Greater(t, right.Direction.X(), float32(0))
}

func TestPickNearestSelectable(t *testing.T) {
	near := panel("near", 0, 0, -3)
	far := panel("far", 0, 0, -6)
	e := NewEngine()

	obj, ok := e.Pick(0, 0, originCamera(), []scene.Object{far, near})
	require.True(t, ok)
	assert.Same(t, near, obj)
}

func TestPickIgnoresNearerScaffolding(t *testing.T) {
	scaffold := panel("scaffold", 0, 0, -2, scene.WithKind(scene.KindScaffolding))
	wall := panel("wall", 0, 0, -5)
	e := NewEngine()

	hit, ok := e.PickHit(0, 0, originCamera(), []scene.Object{scaffold, wall})
	require.True(t, ok)
	assert.Same(t, wall, hit.Object)
	assert.InDelta(t, 5, hit.Distance, 1e-4)
	assert.InDelta(t, -5, hit.Point.Z(), 1e-4)

	_, ok = e.Pick(0, 0, originCamera(), []scene.Object{scaffold})
	assert.False(t, ok)
}

func TestPickTieKeepsFirst(t *testing.T) {
	a := panel("a", 0, 0, -4)
	b := panel("b", 0, 0, -4)
	obj, ok := NewEngine().Pick(0, 0, originCamera(), []scene.Object{a, b})
	require.True(t, ok)
	assert.Same(t, a, obj)
}

func TestPickMisses(t *testing.T) {
	e := NewEngine()
	cam := originCamera()
	wall := panel("wall", 0, 0, -5)

	tests := []struct {
		name    string
		x, y    float32
		objects []scene.Object
	}{
		{"empty scene", 0, 0, nil},
		{"pointer beside object", 0.9, 0.9, []scene.Object{wall}},
		{"outside viewport", 1.5, 0, []scene.Object{wall}},
		{"behind camera", 0, 0, []scene.Object{panel("behind", 0, 0, 5)}},
		{"object without geometry", 0, 0, []scene.Object{scene.NewObject("empty")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := e.Pick(tt.x, tt.y, cam, tt.objects)
			assert.False(t, ok)
			assert.Nil(t, obj)
		})
	}
}

func TestPickRespectsClipRange(t *testing.T) {
	cam := camera.NewCamera(camera.WithRig(camera.NewRig()), camera.WithClipPlanes(1, 10))
	tooNear := panel("too_near", 0, 0, -0.5)
	tooFar := panel("too_far", 0, 0, -20)

	_, ok := NewEngine(WithCullingDisabled(true)).Pick(0, 0, cam, []scene.Object{tooNear, tooFar})
	assert.False(t, ok)

	mid := panel("mid", 0, 0, -8)
	_, ok = NewEngine(WithFarCut(5)).Pick(0, 0, cam, []scene.Object{mid})
	assert.False(t, ok)
	_, ok = NewEngine(WithFarCut(9)).Pick(0, 0, cam, []scene.Object{mid})
	assert.True(t, ok)
}

func TestPickDoesNotMutate(t *testing.T) {
	wall := panel("wall", 0, 0, -5)
	before := wall.Material()
	_, _ = NewEngine().Pick(0, 0, originCamera(), []scene.Object{wall})
	assert.Equal(t, before, wall.Material())
	assert.True(t, wall.Selectable())
}

func TestPickAfterCameraTurn(t *testing.T) {
	rig := camera.NewRig()
	cam := camera.NewCamera(camera.WithRig(rig))
	// A triangle in the x = -5 plane, off to the left of the starting view.
	side := scene.NewObject("side", scene.WithModel(model.NewModel(model.WithTriangles(
		model.Triangle{V0: mgl32.Vec3{-5, -1, -1}, V1: mgl32.Vec3{-5, -1, 1}, V2: mgl32.Vec3{-5, 1, 0}},
	))))

	_, ok := NewEngine().Pick(0, 0, cam, []scene.Object{side})
	assert.False(t, ok)

	rig.SetOrientation(common.HalfPi, 0)
	cam.Update()
	obj, ok := NewEngine().Pick(0, 0, cam, []scene.Object{side})
	require.True(t, ok)
	assert.Equal(t, "side", obj.Name())
}
