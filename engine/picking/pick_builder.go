package picking

import (
	"go.uber.org/zap"
)

// EngineBuilderOption is a function that configures a pick engine during construction.
type EngineBuilderOption func(*engineImpl)

// WithCullingDisabled turns off the frustum test that skips objects outside the view.
//
// Parameters:
//   - disabled: true to test every candidate
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) EngineBuilderOption {
	return func(e *engineImpl) {
		e.cullingDisabled = disabled
	}
}

// WithFarCut limits picks to hits nearer than the given distance. Zero or negative uses the
// camera's far plane.
//
// Parameters:
//   - distance: the maximum pick distance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFarCut(distance float32) EngineBuilderOption {
	return func(e *engineImpl) {
		e.farCut = distance
	}
}

// WithLogger sets the logger used for pick diagnostics.
//
// Parameters:
//   - logger: the logger, nil keeps the no-op default
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engineImpl) {
		if logger != nil {
			e.logger = logger
		}
	}
}
