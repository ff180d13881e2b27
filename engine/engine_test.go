package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/Carmen-Shannon/oxy-inspect/engine/selection"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays batches of events, running the update callback after each batch.
type fakeWindow struct {
	batches [][]input.Event
	handler func(input.Event)
	update  func()
	cursor  common.CursorShape
	closed  bool
	closes  int
}

func (w *fakeWindow) SetUpdateCallback(callback func())            { w.update = callback }
func (w *fakeWindow) SetEventHandler(handler func(ev input.Event)) { w.handler = handler }
func (w *fakeWindow) SetCursor(shape common.CursorShape)           { w.cursor = shape }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return nil }
func (w *fakeWindow) IsRunning() bool                              { return !w.closed }
func (w *fakeWindow) Width() int                                   { return 800 }
func (w *fakeWindow) Height() int                                  { return 600 }

func (w *fakeWindow) Close() error {
	w.closes++
	if w.closed {
		return errors.New("window is not initialized")
	}
	w.closed = true
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for _, batch := range w.batches {
		if !w.IsRunning() {
			return
		}
		for _, ev := range batch {
			w.handler(ev)
		}
		w.update()
	}
}

type fakeRenderer struct {
	uploaded  []scene.Object
	uploadErr error
	renders   int
	lastVP    common.Mat4
	resized   [2]int
	released  bool
}

func (r *fakeRenderer) Pipeline(string) pipeline.Pipeline   { return nil }
func (r *fakeRenderer) SetPresentMode(renderer.PresentMode) {}
func (r *fakeRenderer) SetBackground([4]float64)            {}
func (r *fakeRenderer) Release()                            { r.released = true }

func (r *fakeRenderer) Resize(width, height int) error {
	r.resized = [2]int{width, height}
	return nil
}

func (r *fakeRenderer) Upload(objects []scene.Object) error {
	if r.uploadErr != nil {
		return r.uploadErr
	}
	r.uploaded = objects
	return nil
}

func (r *fakeRenderer) Render(viewProj common.Mat4) error {
	r.renders++
	r.lastVP = viewProj
	return nil
}

// beamScene holds a single 1x1 square "beam" centered on the origin and facing +Z, so the
// framed camera sees it in the middle of the 800x600 viewport.
func beamScene() scene.Scene {
	tris := []model.Triangle{
		{V0: mgl32.Vec3{-0.5, -0.5, 0}, V1: mgl32.Vec3{0.5, -0.5, 0}, V2: mgl32.Vec3{0.5, 0.5, 0}},
		{V0: mgl32.Vec3{-0.5, -0.5, 0}, V1: mgl32.Vec3{0.5, 0.5, 0}, V2: mgl32.Vec3{-0.5, 0.5, 0}},
	}
	beam := scene.NewObject("beam",
		scene.WithModel(model.NewModel(model.WithTriangles(tris...))),
		scene.WithMaterial(material.NewMaterial(material.WithName("beam_mat"))))
	return scene.NewScene("site", scene.WithObjects(beam))
}

func doubleClick(at time.Duration, x, y float32) []input.Event {
	var evs []input.Event
	for _, offset := range []time.Duration{0, 100 * time.Millisecond} {
		down := input.Event{Type: input.PointerDown, Time: at + offset, Button: common.MouseButtonLeft, X: x, Y: y}
		down.Buttons[common.MouseButtonLeft] = true
		evs = append(evs, down,
			input.Event{Type: input.PointerUp, Time: at + offset + 20*time.Millisecond, Button: common.MouseButtonLeft, X: x, Y: y})
	}
	return evs
}

func newTestEngine(t *testing.T, win *fakeWindow, r *fakeRenderer, options ...EngineBuilderOption) Engine {
	t.Helper()
	records := record.NewStore(record.WithRecord("beam", record.Record{Vendor: "Acme", Zone: "A1"}))
	options = append([]EngineBuilderOption{WithWindow(win), WithRenderer(r), WithRecords(records)}, options...)
	return NewEngine(beamScene(), options...)
}

func TestNewEnginePanics(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil, WithWindow(&fakeWindow{})) })
	assert.Panics(t, func() { NewEngine(beamScene()) })
}

func TestRunUploadsRendersAndShutsDown(t *testing.T) {
	win := &fakeWindow{batches: [][]input.Event{nil, nil, nil}}
	r := &fakeRenderer{}
	e := newTestEngine(t, win, r)

	require.NoError(t, e.Run())

	assert.Len(t, r.uploaded, 1)
	assert.Equal(t, 3, r.renders)
	assert.Equal(t, e.Camera().ViewProjectionMatrix(), r.lastVP)
	assert.Equal(t, uint64(3), e.Loop().Frames())
	assert.True(t, r.released)
	assert.True(t, win.closed)

	e.Quit()
	assert.Equal(t, 1, win.closes)
}

func TestRunFailsOnUploadError(t *testing.T) {
	win := &fakeWindow{batches: [][]input.Event{nil}}
	r := &fakeRenderer{uploadErr: errors.New("out of memory")}
	e := newTestEngine(t, win, r)

	err := e.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine: uploading scene")
	assert.Zero(t, r.renders)
}

func TestCameraFramesScene(t *testing.T) {
	e := newTestEngine(t, &fakeWindow{}, &fakeRenderer{})

	pos := e.Camera().Position()
	assert.InDelta(t, 0, pos.X(), 1e-5)
	assert.InDelta(t, 0, pos.Y(), 1e-5)
	assert.Greater(t, pos.Z(), float32(0))
	assert.InDelta(t, 800.0/600.0, e.Camera().Aspect(), 1e-6)
}

func TestDoubleClickSelectsAndXReleases(t *testing.T) {
	win := &fakeWindow{batches: [][]input.Event{doubleClick(0, 400, 300), nil}}
	r := &fakeRenderer{}
	e := newTestEngine(t, win, r)
	beam := e.Scene().Get("beam")
	require.NotNil(t, beam)

	require.NoError(t, e.Run())

	assert.Equal(t, selection.StateSelected, e.Selection().State())
	assert.True(t, e.Overlay().Visible())
	assert.Equal(t, "Acme", e.Overlay().Current().Value(record.LabelVendor))
	assert.Equal(t, "highlight", beam.Material().Name())
	assert.Equal(t, common.CursorPointer, win.cursor)

	win.handler(input.Event{Type: input.KeyDown, Key: common.KeyX})
	assert.False(t, e.Overlay().Visible())
	assert.Equal(t, selection.StateIdle, e.Selection().State())
	assert.Equal(t, "beam_mat", beam.Material().Name())
	assert.False(t, e.Loop().Held(common.KeyX))
}

func TestResizeReachesRendererAndCamera(t *testing.T) {
	win := &fakeWindow{batches: [][]input.Event{{{Type: input.Resize, Width: 1024, Height: 512}}}}
	r := &fakeRenderer{}
	e := newTestEngine(t, win, r)

	require.NoError(t, e.Run())
	assert.Equal(t, [2]int{1024, 512}, r.resized)
	assert.InDelta(t, 2, e.Camera().Aspect(), 1e-6)
	assert.Equal(t, float32(1024), e.Loop().Viewport().Width)
}

func TestFrameLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Window.FrameCap = 50

	e := newTestEngine(t, &fakeWindow{}, &fakeRenderer{}, WithConfig(cfg)).(*engine)
	assert.Equal(t, 20*time.Millisecond, e.renderFrameLimit)

	e = newTestEngine(t, &fakeWindow{}, &fakeRenderer{}, WithConfig(cfg), WithRenderFrameLimit(100)).(*engine)
	assert.Equal(t, 10*time.Millisecond, e.renderFrameLimit)

	e.SetRenderFrameLimit(0)
	assert.Zero(t, e.renderFrameLimit)
}
