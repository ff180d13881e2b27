// Package renderer draws the inspected scene: every object with geometry is flattened into one
// flat-shaded vertex buffer, and an object's colors are rewritten in place whenever its applied
// material changes (hover and selection highlights, restores).
package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/Carmen-Shannon/oxy-inspect/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	frame bind_group_provider.BindGroupProvider
	mesh  bind_group_provider.BindGroupProvider
	scene *sceneMesh

	lightDir common.Vec3
	logger   *zap.Logger

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	background           [4]float64
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the GPU backend, the two scene pipelines (opaque and translucent) and the
// scene vertex buffer. It reads the current material of each uploaded object every frame, so
// callers never notify it about highlight changes.
type Renderer interface {
	// Pipeline retrieves the registered Pipeline for a key, or nil.
	//
	// Parameters:
	//   - key: PipelineOpaque or PipelineTranslucent
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline or nil
	Pipeline(key string) pipeline.Pipeline

	// Resize reconfigures the surface for a new framebuffer size.
	// A zero size (minimized window) is ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the surface attachments could not be recreated
	Resize(width, height int) error

	// SetPresentMode changes the present mode. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetBackground sets the clear color.
	//
	// Parameters:
	//   - rgba: linear RGBA in [0, 1]
	SetBackground(rgba [4]float64)

	// Upload replaces the scene vertex buffer with the geometry of objects.
	//
	// Parameters:
	//   - objects: the scene objects, in draw order
	//
	// Returns:
	//   - error: an error if the vertex buffer could not be created
	Upload(objects []scene.Object) error

	// Render draws one frame with the given camera view-projection and presents it.
	// Objects whose material changed since the last frame are re-uploaded first.
	//
	// Parameters:
	//   - viewProj: the camera view-projection matrix
	//
	// Returns:
	//   - error: an error if the frame could not be acquired
	Render(viewProj common.Mat4) error

	// Release frees every GPU resource.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the backend for the window's surface, configures it to the window size,
// and registers the scene pipelines.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window providing the surface and its size
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the GPU could not be initialized
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	if win == nil {
		panic("renderer: NewRenderer requires a window")
	}

	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		frame:         bind_group_provider.NewBindGroupProvider("Frame"),
		mesh:          bind_group_provider.NewBindGroupProvider("Scene Mesh"),
		scene:         &sceneMesh{},
		lightDir:      defaultLightDir,
		logger:        zap.NewNop(),
		presentMode:   PresentModeVSync,
		msaa:          MSAA4x,
		background:    [4]float64{0.1, 0.1, 0.1, 1},
	}

	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}
	if err != nil {
		return nil, err
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(toColor(r.background))
	if err := r.backend.ConfigureSurface(win.Width(), win.Height()); err != nil {
		r.backend.Release()
		return nil, err
	}

	for _, p := range scenePipelines() {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			r.backend.Release()
			return nil, err
		}
		r.pipelineCache[p.PipelineKey()] = p
	}

	if err := r.backend.InitBindGroup(r.frame, frameBindGroupLayout()); err != nil {
		r.backend.Release()
		return nil, err
	}

	r.logger.Info("renderer ready",
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()),
		zap.Uint32("msaa", uint32(r.msaa)),
	)
	return r, nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Resize(width, height int) error {
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetBackground(rgba [4]float64) {
	r.mu.Lock()
	r.background = rgba
	r.mu.Unlock()
	r.backend.SetClearColor(toColor(rgba))
}

func (r *renderer) Upload(objects []scene.Object) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := buildSceneMesh(objects)
	if err := r.backend.InitVertexBuffer(r.mesh, m.data, m.VertexCount()); err != nil {
		return errors.Wrap(err, "renderer: upload scene")
	}
	r.scene = m
	r.logger.Info("scene uploaded",
		zap.Int("objects", len(m.spans)),
		zap.Int("vertices", m.VertexCount()),
	)
	return nil
}

func (r *renderer) Render(viewProj common.Mat4) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	writes := []bind_group_provider.BufferWrite{{
		Provider: r.frame,
		Binding:  0,
		Data:     packFrame(viewProj, r.lightDir),
	}}
	for _, patch := range r.scene.refresh() {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: r.mesh,
			Binding:  VertexBinding,
			Offset:   patch.Offset,
			Data:     patch.Data,
		})
	}
	r.backend.WriteBuffers(writes)

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	groups := []bind_group_provider.BindGroupProvider{r.frame}
	opaque := r.pipelineCache[PipelineOpaque]
	translucent := r.pipelineCache[PipelineTranslucent]
	for i := range r.scene.spans {
		span := &r.scene.spans[i]
		if !span.translucent() {
			r.backend.DrawCall(opaque, r.mesh, uint32(span.first), uint32(span.count), groups)
		}
	}
	for i := range r.scene.spans {
		span := &r.scene.spans[i]
		if span.translucent() {
			r.backend.DrawCall(translucent, r.mesh, uint32(span.first), uint32(span.count), groups)
		}
	}

	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, p := range r.pipelineCache {
		if rp := p.RenderPipeline(); rp != nil {
			rp.Release()
		}
		delete(r.pipelineCache, key)
	}
	r.mesh.Release()
	r.frame.Release()
	r.backend.Release()
}

func toColor(rgba [4]float64) wgpu.Color {
	return wgpu.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}
