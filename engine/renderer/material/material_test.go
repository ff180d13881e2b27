package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.BaseColor())
	assert.Equal(t, float32(1), m.Roughness())
	assert.Equal(t, float32(1), m.Opacity())
	assert.False(t, m.Transparent())
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewMaterial(
		WithName("steel"),
		WithBaseColor([4]float32{0.5, 0.5, 0.5, 1}),
		WithMetallic(1),
		WithExtra("grade", "S355"),
	)

	clone := orig.Clone()
	require.NotSame(t, orig, clone)
	assert.Equal(t, orig.Properties(), clone.Properties())

	p := clone.Properties()
	p.Extras["grade"] = "S235"
	p.BaseColor[0] = 0
	assert.Equal(t, "S355", clone.Properties().Extras["grade"])
	assert.Equal(t, "S355", orig.Properties().Extras["grade"])
	assert.Equal(t, float32(0.5), orig.BaseColor()[0])
}

func TestFromPropertiesCopies(t *testing.T) {
	props := Properties{Name: "glass", Opacity: 0.3, Transparent: true, Extras: map[string]string{"k": "v"}}
	m := FromProperties(props)
	props.Extras["k"] = "changed"
	props.Name = "other"

	assert.Equal(t, "glass", m.Name())
	assert.Equal(t, "v", m.Properties().Extras["k"])
}

func TestNewHighlight(t *testing.T) {
	h := NewHighlight([3]float32{0, 1, 0}, 0.5)
	assert.Equal(t, "highlight", h.Name())
	assert.Equal(t, [4]float32{0, 1, 0, 1}, h.BaseColor())
	assert.True(t, h.Transparent())
	assert.InDelta(t, 0.5, h.Opacity(), 1e-6)

	opaque := NewHighlight([3]float32{1, 0, 0}, 1)
	assert.False(t, opaque.Transparent())
}
