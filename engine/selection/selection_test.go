package selection

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/overlay"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeOverlay struct {
	visible bool
	shown   []overlay.Info
	hides   int
}

func (f *fakeOverlay) Visible() bool { return f.visible }

func (f *fakeOverlay) Show(info overlay.Info) {
	f.visible = true
	f.shown = append(f.shown, info)
}

func (f *fakeOverlay) Hide() {
	f.visible = false
	f.hides++
}

func (f *fakeOverlay) Size() (float32, float32) { return 200, 100 }

type fakeCursor struct {
	shapes []common.CursorShape
}

func (f *fakeCursor) SetCursor(shape common.CursorShape) { f.shapes = append(f.shapes, shape) }

func (f *fakeCursor) last() common.CursorShape {
	if len(f.shapes) == 0 {
		return common.CursorDefault
	}
	return f.shapes[len(f.shapes)-1]
}

// journal records material assignments across objects in order.
type journal struct {
	entries []string
}

type trackedObject struct {
	scene.Object
	j *journal
}

func (o *trackedObject) SetMaterial(m material.Material) {
	o.j.entries = append(o.j.entries, o.Name()+":"+m.Name())
	o.Object.SetMaterial(m)
}

type fixture struct {
	ctrl    Controller
	overlay *fakeOverlay
	cursor  *fakeCursor
	journal *journal
	objects map[string]scene.Object
}

func newFixture(t *testing.T, opts ...ControllerBuilderOption) *fixture {
	t.Helper()
	f := &fixture{overlay: &fakeOverlay{}, cursor: &fakeCursor{}, journal: &journal{}, objects: map[string]scene.Object{}}

	var all []scene.Object
	for _, name := range []string{"beam", "column", "unrecorded"} {
		obj := &trackedObject{
			Object: scene.NewObject(name, scene.WithMaterial(material.NewMaterial(material.WithName(name+"_mat")))),
			j:      f.journal,
		}
		f.objects[name] = obj
		all = append(all, obj)
	}

	store := record.NewStore(
		record.WithRecord("beam", record.Record{Vendor: "PT. ABC", Workers: record.IntPtr(25)}),
		record.WithRecord("column", record.Record{Zone: "Zone B"}),
	)
	opts = append([]ControllerBuilderOption{
		WithCursor(f.cursor),
		WithViewport(common.NewViewport(800, 600)),
	}, opts...)
	f.ctrl = NewController(f.overlay, store, opts...)
	f.ctrl.RegisterMaterials(all)
	return f
}

func TestNewControllerPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewController(nil, record.NewStore()) })
	assert.Panics(t, func() { NewController(&fakeOverlay{}, nil) })
}

func TestHoverHighlightsAndSetsCursor(t *testing.T) {
	f := newFixture(t)
	beam := f.objects["beam"]

	f.ctrl.RequestHover(beam)
	assert.Equal(t, StateHovering, f.ctrl.State())
	assert.Same(t, beam, f.ctrl.Current())
	assert.Equal(t, "highlight", beam.Material().Name())
	assert.Equal(t, common.CursorPointer, f.cursor.last())

	// Hovering the same object again does nothing.
	f.ctrl.RequestHover(beam)
	assert.Equal(t, []string{"beam:highlight"}, f.journal.entries)

	f.ctrl.RequestHover(nil)
	assert.Equal(t, StateIdle, f.ctrl.State())
	assert.Nil(t, f.ctrl.Current())
	assert.Equal(t, "beam_mat", beam.Material().Name())
	assert.Equal(t, common.CursorDefault, f.cursor.last())
}

func TestHighlightClonesAreDistinct(t *testing.T) {
	f := newFixture(t)
	f.ctrl.RequestHover(f.objects["beam"])
	first := f.objects["beam"].Material()
	f.ctrl.RequestHover(f.objects["column"])
	second := f.objects["column"].Material()
	assert.NotSame(t, first, second)
}

func TestRestorePrecedesHighlight(t *testing.T) {
	f := newFixture(t)
	f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{10, 10})
	f.ctrl.RequestSelect(f.objects["column"], true, common.Vec2{10, 10})

	assert.Equal(t, []string{
		"beam:highlight",
		"beam:beam_mat",
		"column:highlight",
	}, f.journal.entries)

	require.Len(t, f.overlay.shown, 2)
	info := f.overlay.shown[1]
	assert.Equal(t, "column", info.Object)
	assert.Equal(t, "Zone B", info.Value(record.LabelZone))
	assert.Equal(t, common.NotSpecified, info.Value(record.LabelVendor))
	assert.Same(t, f.objects["column"], f.ctrl.Current())
	assert.Equal(t, StateSelected, f.ctrl.State())
}

func TestOverlayPinsSelection(t *testing.T) {
	f := newFixture(t)
	beam, column := f.objects["beam"], f.objects["column"]
	f.ctrl.RequestSelect(beam, true, common.Vec2{100, 100})
	require.True(t, f.overlay.visible)
	entries := len(f.journal.entries)

	for i := 0; i < 5; i++ {
		f.ctrl.RequestHover(column)
		f.ctrl.RequestHover(nil)
		f.ctrl.RequestSelect(column, false, common.Vec2{})
		f.ctrl.Clear(false)
	}
	assert.Equal(t, StateSelected, f.ctrl.State())
	assert.Same(t, beam, f.ctrl.Current())
	assert.Len(t, f.journal.entries, entries)
	assert.Len(t, f.overlay.shown, 1)

	f.ctrl.RequestSelect(column, true, common.Vec2{})
	assert.Same(t, column, f.ctrl.Current())
}

func TestSelectPlacesOverlay(t *testing.T) {
	f := newFixture(t)
	f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{700, 550})
	require.Len(t, f.overlay.shown, 1)
	assert.Equal(t, overlay.Placement{X: 490, Y: 440}, f.overlay.shown[0].Placement)
	assert.Equal(t, "25", f.overlay.shown[0].Value(record.LabelWorkers))
}

func TestSelectWithoutRecordFallsBackToHover(t *testing.T) {
	f := newFixture(t)
	unrecorded := f.objects["unrecorded"]

	f.ctrl.RequestSelect(unrecorded, true, common.Vec2{})
	assert.Equal(t, StateHovering, f.ctrl.State())
	assert.Same(t, unrecorded, f.ctrl.Current())
	assert.Empty(t, f.overlay.shown)

	// Force is not honored for an object without a record.
	f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{})
	f.ctrl.RequestSelect(unrecorded, true, common.Vec2{})
	assert.Same(t, f.objects["beam"], f.ctrl.Current())
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{})

	f.ctrl.Clear(false)
	assert.Equal(t, StateSelected, f.ctrl.State())
	assert.Zero(t, f.overlay.hides)

	f.ctrl.Clear(true)
	assert.Equal(t, StateIdle, f.ctrl.State())
	assert.Nil(t, f.ctrl.Current())
	assert.Equal(t, 1, f.overlay.hides)
	assert.False(t, f.overlay.visible)
	assert.Equal(t, "beam_mat", f.objects["beam"].Material().Name())
	assert.Equal(t, common.CursorDefault, f.cursor.last())

	// Unforced clear when nothing is shown never emits a hide.
	f.ctrl.RequestHover(f.objects["column"])
	f.ctrl.Clear(false)
	assert.Equal(t, 1, f.overlay.hides)
	assert.Equal(t, StateIdle, f.ctrl.State())
}

func TestSelectNilClears(t *testing.T) {
	f := newFixture(t)
	f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{})
	f.ctrl.RequestSelect(nil, true, common.Vec2{})
	assert.Equal(t, StateIdle, f.ctrl.State())
	assert.False(t, f.overlay.visible)
}

func TestSavedTableNeverMutated(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := newFixture(t, WithLogger(zap.New(core)))
	beam, column := f.objects["beam"], f.objects["column"]

	for i := 0; i < 10; i++ {
		f.ctrl.RequestHover(beam)
		f.ctrl.RequestHover(column)
		f.ctrl.RequestSelect(beam, true, common.Vec2{})
		f.ctrl.Clear(true)
	}

	saved, ok := f.ctrl.SavedMaterial("beam")
	require.True(t, ok)
	assert.Equal(t, "beam_mat", saved.Name())
	assert.Equal(t, "beam_mat", beam.Material().Name())
	assert.Equal(t, "column_mat", column.Material().Name())

	// A second registration is rejected, even with highlighted materials applied.
	f.ctrl.RequestHover(beam)
	f.ctrl.RegisterMaterials([]scene.Object{beam})
	saved, _ = f.ctrl.SavedMaterial("beam")
	assert.Equal(t, "beam_mat", saved.Name())
	assert.Equal(t, 1, logs.Len())

	_, ok = f.ctrl.SavedMaterial("missing")
	assert.False(t, ok)
}

func TestHighlightedObjectMatchesState(t *testing.T) {
	f := newFixture(t)
	seq := []func(){
		func() { f.ctrl.RequestHover(f.objects["beam"]) },
		func() { f.ctrl.RequestHover(f.objects["column"]) },
		func() { f.ctrl.RequestSelect(f.objects["beam"], true, common.Vec2{}) },
		func() { f.ctrl.RequestHover(f.objects["column"]) },
		func() { f.ctrl.Clear(true) },
		func() { f.ctrl.RequestHover(f.objects["unrecorded"]) },
	}
	for _, step := range seq {
		step()
		highlighted := 0
		for _, obj := range f.objects {
			if obj.Material().Name() == "highlight" {
				highlighted++
				assert.Same(t, obj, f.ctrl.Current())
			}
		}
		assert.LessOrEqual(t, highlighted, 1)
		if f.ctrl.Current() == nil {
			assert.Equal(t, StateIdle, f.ctrl.State())
		}
	}
}

func TestCustomHighlight(t *testing.T) {
	f := newFixture(t, WithHighlight(material.NewMaterial(material.WithName("glow"))))
	f.ctrl.RequestHover(f.objects["beam"])
	assert.Equal(t, "glow", f.objects["beam"].Material().Name())
}
