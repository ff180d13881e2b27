package renderer

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithBackground sets the initial clear color.
//
// Parameters:
//   - rgba: linear RGBA in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithBackground(rgba [4]float64) RendererBuilderOption {
	return func(r *renderer) {
		r.background = rgba
	}
}

// WithLightDirection sets the direction towards the scene light.
//
// Parameters:
//   - dir: the light direction, need not be normalized
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithLightDirection(dir common.Vec3) RendererBuilderOption {
	return func(r *renderer) {
		if dir.Len() > 0 {
			r.lightDir = dir
		}
	}
}

// WithLogger sets the logger used for GPU lifecycle messages.
//
// Parameters:
//   - logger: the zap logger, nil keeps the no-op logger
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithLogger(logger *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
