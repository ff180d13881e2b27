package gesture

import (
	"time"

	"go.uber.org/zap"
)

type InterpreterBuilderOption func(*interpreterImpl)

// WithPolicy sets the pick policy.
//
// Parameters:
//   - policy: PickDouble or PickSingle
//
// Returns:
//   - InterpreterBuilderOption: a function that sets the pick policy
func WithPolicy(policy PickPolicy) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		g.policy = policy
	}
}

// WithDoubleWindow sets the maximum gap between the two primary contacts of a double action.
//
// Parameters:
//   - window: the double-action window
//
// Returns:
//   - InterpreterBuilderOption: a function that sets the window
func WithDoubleWindow(window time.Duration) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if window > 0 {
			g.doubleWindow = window
		}
	}
}

// WithDeadZone sets how far in pixels a contact may move and still count as a click or tap.
func WithDeadZone(px float32) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if px >= 0 {
			g.deadZone = px
		}
	}
}

// WithRotationSpeed sets the radians of yaw or pitch per pixel dragged.
func WithRotationSpeed(speed float32) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if speed > 0 {
			g.rotationSpeed = speed
		}
	}
}

// WithPinchSensitivity sets the world units moved per pixel of pinch distance change.
func WithPinchSensitivity(s float32) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if s > 0 {
			g.pinchSensitivity = s
		}
	}
}

// WithPanSensitivity sets the world units moved per pixel of two-finger midpoint travel.
func WithPanSensitivity(s float32) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if s > 0 {
			g.panSensitivity = s
		}
	}
}

// WithScrollSensitivity sets the world units moved per wheel unit.
func WithScrollSensitivity(s float32) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		g.scrollSensitivity = s
	}
}

// WithLogger sets the logger used for mode transitions.
func WithLogger(logger *zap.Logger) InterpreterBuilderOption {
	return func(g *interpreterImpl) {
		if logger != nil {
			g.logger = logger
		}
	}
}
