package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// vertexStride is the byte size of one interleaved vertex: position vec3, normal vec3, color vec4.
const vertexStride = 40

// frameUniformSize is the byte size of the frame uniform: view_proj mat4 plus light_dir vec4.
const frameUniformSize = 80

// fallbackColor is drawn for objects that carry no material.
var fallbackColor = [4]float32{0.8, 0.8, 0.8, 1}

// clipCorrection remaps OpenGL clip depth [-w, w] onto the [0, w] range WebGPU expects.
var clipCorrection = common.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// meshSpan is the contiguous vertex range one scene object occupies in the scene vertex buffer.
type meshSpan struct {
	obj   scene.Object
	first int
	count int
	// mat is the material the span's colors were last written with.
	mat material.Material
}

// translucent reports whether the span must be drawn with the blended pipeline.
func (s *meshSpan) translucent() bool {
	return s.mat != nil && s.mat.Transparent()
}

// sceneMesh is the CPU side of the scene vertex buffer.
type sceneMesh struct {
	spans []meshSpan
	data  []byte
}

// buildSceneMesh flattens every object with geometry into one non-indexed triangle list.
// Objects without a model are skipped.
//
// Parameters:
//   - objects: the scene objects to pack
//
// Returns:
//   - *sceneMesh: the packed vertices and per-object spans
func buildSceneMesh(objects []scene.Object) *sceneMesh {
	total := 0
	for _, obj := range objects {
		if obj.Model() != nil {
			total += obj.Model().TriangleCount() * 3
		}
	}

	m := &sceneMesh{
		spans: make([]meshSpan, 0, len(objects)),
		data:  make([]byte, total*vertexStride),
	}
	first := 0
	for _, obj := range objects {
		if obj.Model() == nil || obj.Model().TriangleCount() == 0 {
			continue
		}
		span := meshSpan{
			obj:   obj,
			first: first,
			count: obj.Model().TriangleCount() * 3,
			mat:   obj.Material(),
		}
		packSpan(m.data[first*vertexStride:(first+span.count)*vertexStride], obj, vertexColor(span.mat))
		m.spans = append(m.spans, span)
		first += span.count
	}
	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *sceneMesh) VertexCount() int {
	return len(m.data) / vertexStride
}

// refresh re-packs every span whose object material changed since the last write.
//
// Returns:
//   - []meshPatch: the byte ranges to upload, in span order
func (m *sceneMesh) refresh() []meshPatch {
	var patches []meshPatch
	for i := range m.spans {
		span := &m.spans[i]
		current := span.obj.Material()
		if current == span.mat {
			continue
		}
		span.mat = current
		start, end := span.first*vertexStride, (span.first+span.count)*vertexStride
		packSpan(m.data[start:end], span.obj, vertexColor(current))
		patches = append(patches, meshPatch{Offset: uint64(start), Data: m.data[start:end]})
	}
	return patches
}

// meshPatch is one vertex buffer write.
type meshPatch struct {
	Offset uint64
	Data   []byte
}

// packSpan writes the object's triangles with flat face normals and a single color.
func packSpan(buf []byte, obj scene.Object, color [4]float32) {
	off := 0
	for _, tri := range obj.Model().Triangles() {
		normal := tri.V1.Sub(tri.V0).Cross(tri.V2.Sub(tri.V0))
		if l := normal.Len(); l > 0 {
			normal = normal.Mul(1 / l)
		}
		for _, v := range [3]common.Vec3{tri.V0, tri.V1, tri.V2} {
			packVertex(buf[off:off+vertexStride], v, normal, color)
			off += vertexStride
		}
	}
}

// packVertex writes one interleaved vertex in little endian float32s.
func packVertex(buf []byte, pos, normal common.Vec3, color [4]float32) {
	putFloats(buf[0:12], pos[:]...)
	putFloats(buf[12:24], normal[:]...)
	putFloats(buf[24:40], color[:]...)
}

// vertexColor resolves the color a material is drawn with. Emissive is added to the base color
// so that highlight materials stay saturated under the directional light.
//
// Parameters:
//   - m: the material, may be nil
//
// Returns:
//   - [4]float32: linear RGBA
func vertexColor(m material.Material) [4]float32 {
	if m == nil {
		return fallbackColor
	}
	base := m.BaseColor()
	emissive := m.Emissive()
	c := [4]float32{
		common.Clamp(base[0]+emissive[0], 0, 1),
		common.Clamp(base[1]+emissive[1], 0, 1),
		common.Clamp(base[2]+emissive[2], 0, 1),
		1,
	}
	if m.Transparent() {
		c[3] = common.Clamp(m.Opacity(), 0, 1)
	}
	return c
}

// packFrame writes the frame uniform for a view-projection matrix and a light direction.
//
// Parameters:
//   - viewProj: the camera view-projection matrix in OpenGL clip conventions
//   - lightDir: direction towards the light, normalized on write
//
// Returns:
//   - []byte: frameUniformSize bytes
func packFrame(viewProj common.Mat4, lightDir common.Vec3) []byte {
	buf := make([]byte, frameUniformSize)
	m := clipCorrection.Mul4(viewProj)
	putFloats(buf[0:64], m[:]...)
	if lightDir.Len() > 0 {
		lightDir = lightDir.Normalize()
	}
	putFloats(buf[64:80], lightDir[0], lightDir[1], lightDir[2], 0)
	return buf
}

func putFloats(buf []byte, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

// defaultLightDir points down and slightly towards the default camera.
var defaultLightDir = mgl32.Vec3{0.3, 1, 0.5}
