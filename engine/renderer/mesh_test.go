package renderer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(buf []byte, index int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[index*4:]))
}

func quad(name string, mat material.Material) scene.Object {
	mdl := model.NewModel(model.WithTriangles(
		model.Triangle{V0: mgl32.Vec3{0, 0, 0}, V1: mgl32.Vec3{1, 0, 0}, V2: mgl32.Vec3{1, 1, 0}},
		model.Triangle{V0: mgl32.Vec3{0, 0, 0}, V1: mgl32.Vec3{1, 1, 0}, V2: mgl32.Vec3{0, 1, 0}},
	))
	return scene.NewObject(name, scene.WithModel(mdl), scene.WithMaterial(mat))
}

func TestBuildSceneMeshSpans(t *testing.T) {
	steel := material.NewMaterial(material.WithBaseColor([4]float32{0.2, 0.4, 0.6, 1}))
	a := quad("a", steel)
	empty := scene.NewObject("marker")
	b := quad("b", nil)

	m := buildSceneMesh([]scene.Object{a, empty, b})

	require.Len(t, m.spans, 2)
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 0, m.spans[0].first)
	assert.Equal(t, 6, m.spans[0].count)
	assert.Equal(t, 6, m.spans[1].first)
	assert.Same(t, b, m.spans[1].obj)

	// first vertex of a: position, +z face normal, steel color
	v := m.data[:vertexStride]
	assert.Equal(t, []float32{0, 0, 0}, []float32{floatAt(v, 0), floatAt(v, 1), floatAt(v, 2)})
	assert.InDelta(t, 1, floatAt(v, 5), 1e-6)
	assert.InDelta(t, 0.4, floatAt(v, 7), 1e-6)
	assert.InDelta(t, 1, floatAt(v, 9), 1e-6)

	// b has no material and is drawn in the fallback grey
	v = m.data[6*vertexStride:]
	assert.InDelta(t, fallbackColor[0], floatAt(v, 6), 1e-6)
}

func TestSceneMeshRefreshPatchesChangedSpans(t *testing.T) {
	steel := material.NewMaterial(material.WithBaseColor([4]float32{0.2, 0.4, 0.6, 1}))
	a := quad("a", steel)
	b := quad("b", steel.Clone())
	m := buildSceneMesh([]scene.Object{a, b})

	assert.Empty(t, m.refresh())

	b.SetMaterial(material.NewHighlight([3]float32{1, 0, 0}, 0.8))
	patches := m.refresh()
	require.Len(t, patches, 1)
	assert.Equal(t, uint64(6*vertexStride), patches[0].Offset)
	assert.Len(t, patches[0].Data, 6*vertexStride)
	assert.InDelta(t, 1, floatAt(patches[0].Data, 6), 1e-6)
	assert.InDelta(t, 0.8, floatAt(patches[0].Data, 9), 1e-6)
	assert.True(t, m.spans[1].translucent())
	assert.False(t, m.spans[0].translucent())

	assert.Empty(t, m.refresh())
}

func TestVertexColor(t *testing.T) {
	tests := []struct {
		name string
		mat  material.Material
		want [4]float32
	}{
		{"nil", nil, fallbackColor},
		{"opaque ignores opacity", material.NewMaterial(material.WithBaseColor([4]float32{0.5, 0.5, 0.5, 0.3})), [4]float32{0.5, 0.5, 0.5, 1}},
		{"emissive saturates", material.NewMaterial(material.WithBaseColor([4]float32{0.8, 0, 0, 1}), material.WithEmissive([3]float32{0.5, 0, 0})), [4]float32{1, 0, 0, 1}},
		{"transparent", material.NewMaterial(material.WithOpacity(0.25)), [4]float32{1, 1, 1, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vertexColor(tt.mat)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
}

func TestPackFrameRemapsDepth(t *testing.T) {
	buf := packFrame(mgl32.Ident4(), mgl32.Vec3{0, 2, 0})
	require.Len(t, buf, frameUniformSize)

	// column 2 row 2 and column 3 row 2 of the corrected matrix
	assert.InDelta(t, 0.5, floatAt(buf, 10), 1e-6)
	assert.InDelta(t, 0.5, floatAt(buf, 14), 1e-6)
	assert.InDelta(t, 1, floatAt(buf, 15), 1e-6)
	// light direction is normalized
	assert.InDelta(t, 1, floatAt(buf, 17), 1e-6)
	assert.InDelta(t, 0, floatAt(buf, 19), 1e-6)
}

func TestScenePipelines(t *testing.T) {
	ps := scenePipelines()
	require.Len(t, ps, 2)
	assert.Equal(t, PipelineOpaque, ps[0].PipelineKey())
	assert.True(t, ps[0].DepthWriteEnabled())
	assert.False(t, ps[0].BlendEnabled())
	assert.Equal(t, PipelineTranslucent, ps[1].PipelineKey())
	assert.False(t, ps[1].DepthWriteEnabled())
	assert.True(t, ps[1].BlendEnabled())
	assert.Len(t, ps[1].VertexLayouts(), 1)
	assert.Equal(t, uint64(vertexStride), ps[1].VertexLayouts()[0].ArrayStride)
}
