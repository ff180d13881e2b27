package selection

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"go.uber.org/zap"
)

// ControllerBuilderOption is a function that configures a controller during construction.
type ControllerBuilderOption func(*controllerImpl)

// WithHighlight sets the shared highlight material. Highlighted objects receive clones of it.
//
// Parameters:
//   - m: the highlight material
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithHighlight(m material.Material) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if m != nil {
			c.highlight = m
		}
	}
}

// WithCursor sets the collaborator that shows the pointer affordance.
//
// Parameters:
//   - cursor: the cursor sink
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithCursor(cursor Cursor) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if cursor != nil {
			c.cursor = cursor
		}
	}
}

// WithViewport sets the initial viewport the overlay is kept inside.
//
// Parameters:
//   - vp: the viewport
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithViewport(vp common.Viewport) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.viewport = vp
	}
}

// WithOverlayOffset sets the gap in pixels between the pointer and the overlay.
//
// Parameters:
//   - offset: the gap
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithOverlayOffset(offset float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.offset = offset
	}
}

// WithLogger sets the logger used for state transitions.
//
// Parameters:
//   - logger: the logger, nil keeps the no-op default
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
