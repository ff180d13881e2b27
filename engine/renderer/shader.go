package renderer

import (
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline keys registered by NewRenderer.
const (
	PipelineOpaque      = "scene_opaque"
	PipelineTranslucent = "scene_translucent"
)

// flatShaderSource draws flat shaded, vertex colored triangles. Lighting is two sided because
// CAD exports rarely agree on winding.
const flatShaderSource = `
struct Frame {
    view_proj: mat4x4<f32>,
    light_dir: vec4<f32>,
};

@group(0) @binding(0) var<uniform> frame: Frame;

struct VertexIn {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) color: vec4<f32>,
};

struct VertexOut {
    @builtin(position) clip: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) color: vec4<f32>,
};

@vertex
fn vs_main(in: VertexIn) -> VertexOut {
    var out: VertexOut;
    out.clip = frame.view_proj * vec4<f32>(in.position, 1.0);
    out.normal = in.normal;
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let diffuse = abs(dot(normalize(in.normal), frame.light_dir.xyz));
    let shade = 0.35 + 0.65 * diffuse;
    return vec4<f32>(in.color.rgb * shade, in.color.a);
}
`

// frameBindGroupLayout describes group 0: the frame uniform, visible to both stages.
func frameBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: frameUniformSize,
				},
			},
		},
	}
}

// sceneVertexLayout matches packVertex.
func sceneVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
		},
	}
}

// scenePipelines returns the opaque and translucent variants of the flat shader.
// Culling is off in both: inspected models are viewed from inside as often as from outside.
func scenePipelines() []pipeline.Pipeline {
	shared := []pipeline.PipelineBuilderOption{
		pipeline.WithSource(flatShaderSource, "vs_main", "fs_main"),
		pipeline.WithVertexLayouts(sceneVertexLayout()),
		pipeline.WithBindGroupLayouts(frameBindGroupLayout()),
		pipeline.WithCullMode(wgpu.CullModeNone),
	}
	opaque := pipeline.NewPipeline(PipelineOpaque, shared...)
	translucent := pipeline.NewPipeline(PipelineTranslucent, append(shared,
		pipeline.WithBlendEnabled(true),
		pipeline.WithDepthWriteEnabled(false),
	)...)
	return []pipeline.Pipeline{opaque, translucent}
}
