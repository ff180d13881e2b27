package selection

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/overlay"
	"github.com/Carmen-Shannon/oxy-inspect/engine/record"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-inspect/engine/scene"
	"go.uber.org/zap"
)

type controllerImpl struct {
	overlay overlay.Overlay
	records record.Store
	cursor  Cursor

	highlight material.Material
	saved     map[string]material.Material
	sealed    bool

	state   State
	current scene.Object

	viewport common.Viewport
	offset   float32

	logger *zap.Logger
}

var _ Controller = &controllerImpl{}

// NewController creates a selection Controller in the idle state.
// Panics if ov or records is nil.
//
// Parameters:
//   - ov: the overlay whose visibility pins the selection
//   - records: the record store consulted on select
//   - options: variadic list of ControllerBuilderOption functions
//
// Returns:
//   - Controller: the controller
func NewController(ov overlay.Overlay, records record.Store, options ...ControllerBuilderOption) Controller {
	if ov == nil {
		panic("selection: NewController requires a non-nil Overlay")
	}
	if records == nil {
		panic("selection: NewController requires a non-nil record Store")
	}
	c := &controllerImpl{
		overlay:   ov,
		records:   records,
		cursor:    noCursor{},
		highlight: material.NewHighlight([3]float32{1, 0, 0}, 0.8),
		saved:     make(map[string]material.Material),
		offset:    10,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type noCursor struct{}

func (noCursor) SetCursor(common.CursorShape) {}

func (c *controllerImpl) RegisterMaterials(objects []scene.Object) {
	if c.sealed {
		c.logger.Warn("saved material table already populated, ignoring registration",
			zap.Int("objects", len(objects)))
		return
	}
	for _, obj := range objects {
		if obj == nil || obj.Material() == nil {
			continue
		}
		c.saved[obj.Name()] = obj.Material().Clone()
	}
	c.sealed = true
	c.logger.Debug("saved materials registered", zap.Int("count", len(c.saved)))
}

func (c *controllerImpl) RequestHover(obj scene.Object) {
	if c.overlay.Visible() {
		return
	}
	if obj == nil {
		c.clear()
		return
	}
	if c.current == obj {
		return
	}
	c.swap(obj)
	c.transition(StateHovering)
}

func (c *controllerImpl) RequestSelect(obj scene.Object, force bool, at common.Vec2) {
	if obj == nil {
		c.Clear(force)
		return
	}
	rec, ok := c.records.Get(obj.Name())
	if !ok {
		c.RequestHover(obj)
		return
	}
	if !force && c.overlay.Visible() {
		return
	}

	if c.current != obj {
		c.swap(obj)
	}
	c.transition(StateSelected)

	w, h := c.overlay.Size()
	place := overlay.Place(at.X(), at.Y(), w, h, c.viewport, c.offset)
	c.overlay.Show(overlay.NewInfo(obj.Name(), rec, place))
}

func (c *controllerImpl) Clear(force bool) {
	if !force && c.overlay.Visible() {
		return
	}
	c.clear()
	if force {
		c.overlay.Hide()
	}
}

func (c *controllerImpl) State() State {
	return c.state
}

func (c *controllerImpl) Current() scene.Object {
	return c.current
}

func (c *controllerImpl) SavedMaterial(name string) (material.Material, bool) {
	m, ok := c.saved[name]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

func (c *controllerImpl) SetViewport(vp common.Viewport) {
	c.viewport = vp
}

// swap restores the currently highlighted object and then highlights target.
func (c *controllerImpl) swap(target scene.Object) {
	c.restore(c.current)
	target.SetMaterial(c.highlight.Clone())
	c.current = target
	c.cursor.SetCursor(common.CursorPointer)
}

func (c *controllerImpl) clear() {
	if c.current == nil && c.state == StateIdle {
		return
	}
	c.restore(c.current)
	c.current = nil
	c.cursor.SetCursor(common.CursorDefault)
	c.transition(StateIdle)
}

// restore reapplies a clone of the object's pristine material.
func (c *controllerImpl) restore(obj scene.Object) {
	if obj == nil {
		return
	}
	saved, ok := c.saved[obj.Name()]
	if !ok {
		c.logger.Warn("no saved material, leaving highlight in place", zap.String("object", obj.Name()))
		return
	}
	obj.SetMaterial(saved.Clone())
}

func (c *controllerImpl) transition(to State) {
	name := ""
	if c.current != nil {
		name = c.current.Name()
	}
	c.logger.Debug("selection transition",
		zap.Stringer("from", c.state),
		zap.Stringer("to", to),
		zap.String("object", name),
	)
	c.state = to
}
