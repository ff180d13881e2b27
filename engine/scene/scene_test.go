package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x float32) model.Model {
	return model.NewModel(model.WithTriangles(model.Triangle{
		V0: mgl32.Vec3{x, 0, 0}, V1: mgl32.Vec3{x + 1, 0, 0}, V2: mgl32.Vec3{x, 1, -1},
	}))
}

func TestNewObjectDefaults(t *testing.T) {
	o := NewObject("beam_1")
	assert.Equal(t, "beam_1", o.Name())
	assert.True(t, o.Selectable())
	assert.Nil(t, o.Model())
	assert.True(t, o.Bounds().IsEmpty())

	s := NewObject("scaffold", WithKind(KindScaffolding))
	assert.False(t, s.Selectable())
	assert.Equal(t, "scaffolding", s.Kind().String())

	assert.Panics(t, func() { NewObject("") })
}

func TestObjectSetMaterial(t *testing.T) {
	pristine := material.NewMaterial(material.WithName("concrete"))
	o := NewObject("slab", WithMaterial(pristine))
	assert.Same(t, pristine, o.Material())

	h := material.NewHighlight([3]float32{1, 1, 0}, 0.5)
	o.SetMaterial(h)
	assert.Same(t, h, o.Material())
}

func TestSceneOrderAndLookup(t *testing.T) {
	a := NewObject("a", WithModel(box(0)))
	b := NewObject("b", WithKind(KindScaffolding), WithModel(box(5)))
	c := NewObject("c", WithModel(box(-3)))
	s := NewScene("site", WithObjects(a, b))
	require.NoError(t, s.Add(c))

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []Object{a, b, c}, s.Objects())
	assert.Equal(t, []Object{a, c}, s.Selectable())
	assert.Same(t, b, s.Get("b"))
	assert.Nil(t, s.Get("missing"))

	bounds := s.Bounds()
	assert.Equal(t, float32(-3), bounds.Min.X())
	assert.Equal(t, float32(6), bounds.Max.X())
}

func TestSceneAddRejectsDuplicates(t *testing.T) {
	s := NewScene("site")
	require.NoError(t, s.Add(NewObject("a")))
	assert.Error(t, s.Add(NewObject("a")))
	assert.Error(t, s.Add(nil))

	assert.Panics(t, func() { NewScene("dup", WithObjects(NewObject("x"), NewObject("x"))) })

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.Bounds().IsEmpty())
}
