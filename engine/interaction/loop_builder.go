package interaction

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/gesture"
	"github.com/Carmen-Shannon/oxy-inspect/engine/picking"
	"go.uber.org/zap"
)

type LoopBuilderOption func(*loopImpl)

// WithGesture sets the gesture interpreter. The default uses the rig's rotation speed and the
// double pick policy.
//
// Parameters:
//   - g: the interpreter
//
// Returns:
//   - LoopBuilderOption: a function that sets the interpreter
func WithGesture(g gesture.Interpreter) LoopBuilderOption {
	return func(l *loopImpl) {
		l.gesture = g
	}
}

// WithPicker sets the pick engine.
//
// Parameters:
//   - p: the pick engine
//
// Returns:
//   - LoopBuilderOption: a function that sets the pick engine
func WithPicker(p picking.Engine) LoopBuilderOption {
	return func(l *loopImpl) {
		l.picker = p
	}
}

// WithViewport sets the initial viewport and applies it to the camera and selection.
func WithViewport(vp common.Viewport) LoopBuilderOption {
	return func(l *loopImpl) {
		l.viewport = vp
	}
}

// WithRenderFunc sets the function called at the end of every tick to request a frame.
func WithRenderFunc(fn func()) LoopBuilderOption {
	return func(l *loopImpl) {
		l.onRender = fn
	}
}

func WithLogger(logger *zap.Logger) LoopBuilderOption {
	return func(l *loopImpl) {
		if logger != nil {
			l.logger = logger
		}
	}
}
