// Package engine wires the viewer together: window events feed the interaction loop, the loop
// moves the camera and drives selection, and every tick the renderer draws the scene.
//
// Everything runs on the main goroutine. Window callbacks are delivered from inside the
// message loop, each to completion, and the per-frame update runs after them.
package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/camera"
	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/Carmen-Shannon/oxy-inspect/engine/gesture"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/Carmen-Shannon/oxy-inspect/engine/interaction"
	"github.com/Carmen-Shannon/oxy-inspect/engine/overlay"
	"github.com/Carmen-Shannon/oxy-inspect/engine/picking"
	"github.com/Carmen-Shannon/oxy-inspect/engine/profiler"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"github.com/Carmen-Shannon/oxy-inspect/engine/selection"
	"github.com/Carmen-Shannon/oxy-inspect/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
type engine struct {
	cfg     config.Config
	records record.Store

	window   window.Window
	renderer renderer.Renderer

	scene     scene.Scene
	camera    camera.Camera
	panel     *overlay.Panel
	selection selection.Controller
	loop      interaction.Loop

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	dirty            bool
	lastFrame        time.Time
	now              func() time.Time

	quitOnce sync.Once

	logger *zap.Logger
}

// Engine is the main entry point for the viewer.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene being inspected.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Camera returns the viewer camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Selection returns the selection controller.
	//
	// Returns:
	//   - selection.Controller: the controller
	Selection() selection.Controller

	// Overlay returns the info panel.
	//
	// Returns:
	//   - *overlay.Panel: the panel
	Overlay() *overlay.Panel

	// Loop returns the interaction loop.
	//
	// Returns:
	//   - interaction.Loop: the loop
	Loop() interaction.Loop

	// EnableProfiler enables frame statistics in the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run uploads the scene to the renderer and runs the message loop until the window closes.
	//
	// Returns:
	//   - error: if the scene cannot be uploaded
	Run() error

	// Quit closes the window, which ends Run after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine builds the interaction stack for scn from the configuration and connects it to the
// window. The camera is framed on the scene bounds and the saved material table is captured
// from the scene as loaded. Panics if scn or the window is nil.
//
// Parameters:
//   - scn: the scene to inspect
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(scn scene.Scene, options ...EngineBuilderOption) Engine {
	e := &engine{
		cfg:    config.Default(),
		scene:  scn,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(e)
	}
	if scn == nil {
		panic("engine: NewEngine requires a non-nil Scene")
	}
	if e.window == nil {
		panic("engine: NewEngine requires a Window")
	}
	if e.records == nil {
		e.records = record.NewStore(record.WithDefault(e.cfg.Scene.DefaultRecord))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger.Named("profiler")))
	}
	if e.renderFrameLimit == 0 && e.cfg.Window.FrameCap > 0 {
		e.SetRenderFrameLimit(float64(e.cfg.Window.FrameCap))
	}

	e.build()
	e.window.SetEventHandler(e.handleEvent)
	e.window.SetUpdateCallback(e.frame)
	return e
}

// build creates the camera, selection and interaction components from the configuration.
func (e *engine) build() {
	cfg := e.cfg
	nav := cfg.Navigation

	e.panel = overlay.NewPanel(
		overlay.WithSize(cfg.Overlay.Width, cfg.Overlay.Height),
		overlay.WithLogger(e.logger.Named("overlay")),
	)
	e.selection = selection.NewController(e.panel, e.records,
		selection.WithHighlight(material.NewHighlight(cfg.Highlight.Color, cfg.Highlight.Opacity)),
		selection.WithCursor(e.window),
		selection.WithOverlayOffset(cfg.Overlay.Offset),
		selection.WithLogger(e.logger.Named("selection")),
	)
	e.panel.SetCloseHandler(func() { e.selection.Clear(true) })
	e.selection.RegisterMaterials(e.scene.Objects())

	rig := camera.NewRig(
		camera.WithSpeeds(camera.Speeds{
			Base:      nav.BaseSpeed,
			Precision: nav.PrecisionSpeed,
			Fast:      nav.FastSpeed,
			Boost:     nav.BoostSpeed,
		}),
		camera.WithRotationSpeed(nav.RotationSpeed),
	)
	viewport := common.NewViewport(e.window.Width(), e.window.Height())
	e.camera = camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(nav.Fov)),
		camera.WithClipPlanes(nav.Near, nav.Far),
		camera.WithAspect(viewport.Aspect()),
		camera.WithRig(rig),
	)
	rig.FrameBounds(e.scene.Bounds(), e.camera.Fov())
	e.camera.Update()

	interp := gesture.NewInterpreter(
		gesture.WithPolicy(cfg.PickPolicy()),
		gesture.WithDoubleWindow(cfg.DoubleWindow()),
		gesture.WithDeadZone(cfg.Picking.DeadZone),
		gesture.WithRotationSpeed(nav.RotationSpeed),
		gesture.WithPinchSensitivity(nav.PinchSensitivity),
		gesture.WithPanSensitivity(nav.PanSensitivity),
		gesture.WithScrollSensitivity(nav.ScrollSensitivity),
		gesture.WithLogger(e.logger.Named("gesture")),
	)
	picker := picking.NewEngine(
		picking.WithFarCut(cfg.Picking.FarCut),
		picking.WithLogger(e.logger.Named("picking")),
	)
	e.loop = interaction.NewLoop(e.camera, e.scene, e.selection, e.panel,
		interaction.WithGesture(interp),
		interaction.WithPicker(picker),
		interaction.WithViewport(viewport),
		interaction.WithRenderFunc(func() { e.dirty = true }),
		interaction.WithLogger(e.logger.Named("interaction")),
	)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Selection() selection.Controller {
	return e.selection
}

func (e *engine) Overlay() *overlay.Panel {
	return e.panel
}

func (e *engine) Loop() interaction.Loop {
	return e.loop
}

func (e *engine) Run() error {
	if e.renderer != nil {
		if err := e.renderer.Upload(e.scene.Objects()); err != nil {
			return errors.Wrap(err, "engine: uploading scene")
		}
	}
	e.logger.Info("viewer running",
		zap.String("scene", e.scene.Name()),
		zap.Int("objects", e.scene.Count()),
		zap.Int("records", e.records.Len()),
		zap.Stringer("pick_policy", e.cfg.PickPolicy()),
	)

	e.lastFrame = e.now()
	e.dirty = true
	e.window.ProcessMessages()

	e.logger.Info("viewer stopped", zap.Uint64("frames", e.loop.Frames()))
	e.Quit()
	if e.renderer != nil {
		e.renderer.Release()
	}
	return nil
}

// Quit closes the window once. Closing from inside the update callback ends the message loop
// at its next running check.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			e.logger.Debug("window close", zap.Error(err))
		}
	})
}

// handleEvent routes one window event. X dismisses the info panel, which releases the pinned
// selection through the panel's close handler. Resizes reach the renderer before the loop.
func (e *engine) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.KeyDown:
		if ev.Key == common.KeyX && e.panel.Visible() {
			e.panel.Close()
			e.dirty = true
			return
		}
	case input.Resize:
		if e.renderer != nil {
			if err := e.renderer.Resize(ev.Width, ev.Height); err != nil {
				e.logger.Warn("renderer resize failed", zap.Error(err))
			}
		}
	}
	e.loop.HandleEvent(ev)
}

// frame runs once per message loop iteration: tick, render if the loop asked for it, sample
// the profiler, then sleep off the remainder of the frame budget.
func (e *engine) frame() {
	start := e.now()
	dt := start.Sub(e.lastFrame)
	e.lastFrame = start

	e.loop.Tick(dt)

	if e.dirty && e.renderer != nil {
		e.dirty = false
		if err := e.renderer.Render(e.camera.ViewProjectionMatrix()); err != nil {
			e.logger.Warn("render failed", zap.Error(err))
		}
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// EnableProfiler enables frame statistics in the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame statistics.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
