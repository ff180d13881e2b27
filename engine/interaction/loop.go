// Package interaction runs the per-frame input orchestration: it routes input events to the
// gesture interpreter and the held-key table, turns confirmed picks into selection requests,
// and once per tick applies navigation to the camera and refreshes the hover highlight.
//
// Confirmed picks follow the gesture interpreter's pick policy. The default requires a double
// click or double tap within 300 ms; the single policy picks on a click released inside the
// drag dead zone.
package interaction

import (
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/camera"
	"github.com/Carmen-Shannon/oxy-inspect/engine/gesture"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/Carmen-Shannon/oxy-inspect/engine/overlay"
	"github.com/Carmen-Shannon/oxy-inspect/engine/picking"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/Carmen-Shannon/oxy-inspect/engine/selection"
	"go.uber.org/zap"
)

// Loop defines the interface for the interaction loop.
// Loop is driven from the main goroutine only.
type Loop interface {
	// HandleEvent processes one input event.
	//
	// Parameters:
	//   - ev: the event
	HandleEvent(ev input.Event)

	// Tick advances the camera by one frame of navigation and refreshes the hover highlight.
	// Keyboard movement is applied per tick, not scaled by dt.
	//
	// Parameters:
	//   - dt: time since the previous tick
	Tick(dt time.Duration)

	// Viewport returns the current viewport rectangle.
	//
	// Returns:
	//   - common.Viewport: the viewport
	Viewport() common.Viewport

	// Held reports whether a key is currently held.
	//
	// Parameters:
	//   - key: a key code from common
	//
	// Returns:
	//   - bool: true while the key is down
	Held(key int) bool

	// Frames returns the number of ticks run so far.
	//
	// Returns:
	//   - uint64: tick count
	Frames() uint64
}

type loopImpl struct {
	camera    camera.Camera
	scene     scene.Scene
	selection selection.Controller
	overlay   overlay.Overlay
	gesture   gesture.Interpreter
	picker    picking.Engine

	viewport common.Viewport
	held     map[int]bool

	onRender func()
	frames   uint64
	elapsed  time.Duration

	logger *zap.Logger
}

var _ Loop = &loopImpl{}

// NewLoop creates an interaction Loop.
// Panics if any collaborator is nil.
//
// Parameters:
//   - cam: the camera whose rig is navigated
//   - scn: the scene picked against
//   - ctrl: the selection controller
//   - ov: the overlay, read as the pin gate
//   - options: variadic list of LoopBuilderOption functions
//
// Returns:
//   - Loop: the loop
func NewLoop(cam camera.Camera, scn scene.Scene, ctrl selection.Controller, ov overlay.Overlay, options ...LoopBuilderOption) Loop {
	switch {
	case cam == nil:
		panic("interaction: NewLoop requires a non-nil Camera")
	case scn == nil:
		panic("interaction: NewLoop requires a non-nil Scene")
	case ctrl == nil:
		panic("interaction: NewLoop requires a non-nil selection Controller")
	case ov == nil:
		panic("interaction: NewLoop requires a non-nil Overlay")
	}
	l := &loopImpl{
		camera:    cam,
		scene:     scn,
		selection: ctrl,
		overlay:   ov,
		held:      make(map[int]bool),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(l)
	}
	if l.gesture == nil {
		l.gesture = gesture.NewInterpreter(gesture.WithRotationSpeed(cam.Rig().RotationSpeed()))
	}
	if l.picker == nil {
		l.picker = picking.NewEngine(picking.WithLogger(l.logger))
	}
	if !l.viewport.Empty() {
		l.applyViewport(l.viewport)
	}
	return l
}

func (l *loopImpl) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.KeyDown:
		l.held[ev.Key] = true
		speed := l.camera.Rig().SelectSpeed(ev.Key, ev.Mods)
		l.logger.Debug("key down", zap.Int("key", ev.Key), zap.Float32("speed", speed))
	case input.KeyUp:
		delete(l.held, ev.Key)
		l.camera.Rig().ResetSpeed()
	case input.Resize:
		l.applyViewport(common.NewViewport(ev.Width, ev.Height))
		if l.overlay.Visible() {
			l.selection.Clear(true)
		}
	case input.PointerLeave:
		l.gesture.Handle(ev)
		l.selection.RequestHover(nil)
	default:
		res := l.gesture.Handle(ev)
		if res.Pick != nil {
			l.confirmPick(*res.Pick)
		}
	}
}

func (l *loopImpl) applyViewport(vp common.Viewport) {
	l.viewport = vp
	l.camera.SetAspect(vp.Aspect())
	l.camera.Update()
	l.selection.SetViewport(vp)
	l.logger.Debug("viewport", zap.Float32("width", vp.Width), zap.Float32("height", vp.Height))
}

// pickAt resolves the selectable object under a client position.
func (l *loopImpl) pickAt(pos common.Vec2) (scene.Object, bool) {
	ndcX, ndcY := picking.Project(pos.X(), pos.Y(), l.viewport)
	return l.picker.Pick(ndcX, ndcY, l.camera, l.scene.Objects())
}

func (l *loopImpl) confirmPick(req gesture.PickRequest) {
	obj, ok := l.pickAt(req.Position)
	if !ok {
		l.selection.Clear(false)
		return
	}
	l.logger.Debug("pick confirmed", zap.String("object", obj.Name()), zap.Bool("touch", req.Touch))
	l.selection.RequestSelect(obj, true, req.Position)
}

func (l *loopImpl) Tick(dt time.Duration) {
	rig := l.camera.Rig()
	rig.UpdateBasis()

	d := l.gesture.Drain()
	if d.Yaw != 0 || d.Pitch != 0 {
		rig.ApplyRotation(d.Yaw, d.Pitch)
		rig.UpdateBasis()
	}
	if d.Forward != 0 || d.Right != 0 || d.Up != 0 {
		rig.ApplyTranslation(d.Forward, d.Right, d.Up)
	}

	if f, r, u := l.keyAxes(); f != 0 || r != 0 || u != 0 {
		s := rig.MovementSpeed()
		rig.ApplyTranslation(f*s, r*s, u*s)
	}
	l.camera.Update()

	if !l.gesture.Active() && !l.overlay.Visible() {
		if pos, ok := l.gesture.Hover(); ok {
			obj, _ := l.pickAt(pos)
			l.selection.RequestHover(obj)
		}
	}

	l.frames++
	l.elapsed += dt
	if l.onRender != nil {
		l.onRender()
	}
}

// keyAxes folds the held movement keys into forward, right and up unit axes.
func (l *loopImpl) keyAxes() (forward, right, up float32) {
	axis := func(pos, neg int) float32 {
		var v float32
		if l.held[pos] {
			v++
		}
		if l.held[neg] {
			v--
		}
		return v
	}
	return axis(common.KeyW, common.KeyS), axis(common.KeyD, common.KeyA), axis(common.KeyQ, common.KeyE)
}

func (l *loopImpl) Viewport() common.Viewport {
	return l.viewport
}

func (l *loopImpl) Held(key int) bool {
	return l.held[key]
}

func (l *loopImpl) Frames() uint64 {
	return l.frames
}
