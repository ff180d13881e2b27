package gesture

import (
	"sort"
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

type source int

const (
	sourceNone source = iota
	sourceMouse
	sourceTouch
)

// pointerState tracks the single dragging contact.
type pointerState struct {
	id             int
	button         common.MouseButton
	startX, startY float32
	lastX, lastY   float32
	travelled      float32
}

// pairState tracks the two contacts of a pinch or pan.
type pairState struct {
	id0, id1 int
	prevDist float32
	prevMid  common.Vec2
}

// tapState remembers the last primary contact for double-action detection.
type tapState struct {
	valid bool
	kind  source
	at    time.Duration
}

type interpreterImpl struct {
	policy       PickPolicy
	doubleWindow time.Duration
	deadZone     float32

	rotationSpeed     float32
	pinchSensitivity  float32
	panSensitivity    float32
	scrollSensitivity float32

	mode    Mode
	source  source
	pointer pointerState
	pair    pairState
	touches map[int]common.Vec2

	// suppressed marks a contact that must be released before anything else happens: the
	// confirming contact of a double action, or the finger left over from a pinch or pan.
	suppressed bool

	tap     tapState
	pending Deltas

	hover    common.Vec2
	hasHover bool

	logger *zap.Logger
}

var _ Interpreter = &interpreterImpl{}

// NewInterpreter creates an idle gesture Interpreter configured with the provided options.
//
// Parameters:
//   - options: variadic list of InterpreterBuilderOption functions
//
// Returns:
//   - Interpreter: the interpreter
func NewInterpreter(options ...InterpreterBuilderOption) Interpreter {
	g := &interpreterImpl{
		policy:            PickDouble,
		doubleWindow:      300 * time.Millisecond,
		deadZone:          4,
		rotationSpeed:     0.005,
		pinchSensitivity:  0.02,
		panSensitivity:    0.02,
		scrollSensitivity: 0.5,
		touches:           make(map[int]common.Vec2),
		logger:            zap.NewNop(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

func (g *interpreterImpl) Handle(ev input.Event) Result {
	switch ev.Type {
	case input.PointerDown:
		return g.pointerDown(ev)
	case input.PointerMove:
		g.pointerMove(ev)
	case input.PointerUp:
		return g.pointerUp(ev)
	case input.PointerCancel, input.TouchCancel:
		g.Cancel()
	case input.PointerLeave:
		g.hasHover = false
	case input.Scroll:
		g.pending.Forward += ev.DY * g.scrollSensitivity
	case input.TouchStart:
		return g.touchStart(ev)
	case input.TouchMove:
		g.touchMove(ev)
	case input.TouchEnd:
		return g.touchEnd(ev)
	}
	return Result{}
}

func (g *interpreterImpl) Drain() Deltas {
	d := g.pending
	g.pending = Deltas{}
	return d
}

func (g *interpreterImpl) Mode() Mode {
	return g.mode
}

func (g *interpreterImpl) Active() bool {
	return g.mode != ModeIdle || g.suppressed
}

func (g *interpreterImpl) Hover() (common.Vec2, bool) {
	return g.hover, g.hasHover
}

func (g *interpreterImpl) Policy() PickPolicy {
	return g.policy
}

func (g *interpreterImpl) Cancel() {
	if g.mode != ModeIdle {
		g.logger.Debug("gesture cancelled", zap.Stringer("mode", g.mode))
	}
	g.pending = Deltas{}
	g.touches = make(map[int]common.Vec2)
	g.suppressed = false
	g.tap = tapState{}
	g.setMode(ModeIdle, sourceNone)
}

func (g *interpreterImpl) setMode(m Mode, src source) {
	if m != g.mode {
		g.logger.Debug("gesture mode", zap.Stringer("from", g.mode), zap.Stringer("to", m))
	}
	g.mode = m
	g.source = src
}

// confirmDouble records a primary contact and reports whether it completes a double action.
func (g *interpreterImpl) confirmDouble(kind source, at time.Duration) bool {
	if g.policy != PickDouble {
		return false
	}
	if g.tap.valid && g.tap.kind == kind {
		if elapsed := at - g.tap.at; elapsed >= 0 && elapsed <= g.doubleWindow {
			g.tap = tapState{}
			return true
		}
	}
	g.tap = tapState{valid: true, kind: kind, at: at}
	return false
}

func (g *interpreterImpl) startDrag(src source, id int, button common.MouseButton, x, y float32) {
	g.pointer = pointerState{id: id, button: button, startX: x, startY: y, lastX: x, lastY: y}
	g.setMode(ModeDragging, src)
}

// drag applies a movement of the dragging contact to the pending rotation.
func (g *interpreterImpl) drag(x, y float32) {
	dx := x - g.pointer.lastX
	dy := y - g.pointer.lastY
	g.pointer.lastX, g.pointer.lastY = x, y
	g.pointer.travelled = max(g.pointer.travelled, math32.Hypot(x-g.pointer.startX, y-g.pointer.startY))

	g.pending.Yaw -= dx * g.rotationSpeed
	g.pending.Pitch -= dy * g.rotationSpeed
}

// clickPick returns a pick for the single-action policy when the released contact stayed
// inside the dead zone.
func (g *interpreterImpl) clickPick(x, y float32, touch bool) Result {
	if g.policy != PickSingle || g.pointer.travelled > g.deadZone {
		return Result{}
	}
	if !touch && g.pointer.button != common.MouseButtonLeft {
		return Result{}
	}
	return Result{Pick: &PickRequest{Position: common.Vec2{x, y}, Touch: touch}}
}

// --- mouse ---

func (g *interpreterImpl) pointerDown(ev input.Event) Result {
	if ev.Button != common.MouseButtonLeft && ev.Button != common.MouseButtonRight {
		return Result{}
	}
	if g.mode != ModeIdle || g.suppressed {
		return Result{}
	}

	if ev.Button == common.MouseButtonLeft && g.confirmDouble(sourceMouse, ev.Time) {
		g.suppressed = true
		g.logger.Debug("double click pick", zap.Float32("x", ev.X), zap.Float32("y", ev.Y))
		return Result{Pick: &PickRequest{Position: common.Vec2{ev.X, ev.Y}}}
	}
	g.startDrag(sourceMouse, -1, ev.Button, ev.X, ev.Y)
	return Result{}
}

func (g *interpreterImpl) pointerMove(ev input.Event) {
	if g.mode == ModeDragging && g.source == sourceMouse {
		g.drag(ev.X, ev.Y)
		return
	}
	if g.mode == ModeIdle && !g.suppressed && !ev.AnyButton() {
		g.hover = common.Vec2{ev.X, ev.Y}
		g.hasHover = true
	}
}

func (g *interpreterImpl) pointerUp(ev input.Event) Result {
	if g.suppressed && g.source != sourceTouch {
		g.suppressed = false
		return Result{}
	}
	if g.mode != ModeDragging || g.source != sourceMouse || ev.Button != g.pointer.button {
		return Result{}
	}
	res := g.clickPick(ev.X, ev.Y, false)
	g.setMode(ModeIdle, sourceNone)
	g.hover = common.Vec2{ev.X, ev.Y}
	g.hasHover = true
	return res
}

// --- touch ---

func (g *interpreterImpl) syncTouches(touches []input.Touch) {
	g.touches = make(map[int]common.Vec2, len(touches))
	for _, t := range touches {
		g.touches[t.ID] = common.Vec2{t.X, t.Y}
	}
}

// lowestTwo returns the two smallest touch IDs currently down.
func (g *interpreterImpl) lowestTwo() (int, int) {
	ids := make([]int, 0, len(g.touches))
	for id := range g.touches {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[0], ids[1]
}

func (g *interpreterImpl) pairGeometry() (dist float32, mid common.Vec2, dx, dy float32) {
	p0 := g.touches[g.pair.id0]
	p1 := g.touches[g.pair.id1]
	dx = p1.X() - p0.X()
	dy = p1.Y() - p0.Y()
	return math32.Hypot(dx, dy), p0.Add(p1).Mul(0.5), dx, dy
}

func (g *interpreterImpl) touchStart(ev input.Event) Result {
	if g.mode == ModeDragging && g.source == sourceMouse {
		return Result{}
	}
	g.syncTouches(ev.Touches)
	if g.suppressed {
		return Result{}
	}

	switch {
	case len(g.touches) == 1 && g.mode == ModeIdle:
		t := ev.Touches[0]
		if g.confirmDouble(sourceTouch, ev.Time) {
			g.suppressed = true
			g.source = sourceTouch
			g.logger.Debug("double tap pick", zap.Float32("x", t.X), zap.Float32("y", t.Y))
			return Result{Pick: &PickRequest{Position: common.Vec2{t.X, t.Y}, Touch: true}}
		}
		g.startDrag(sourceTouch, t.ID, common.MouseButtonLeft, t.X, t.Y)

	case len(g.touches) >= 2 && (g.mode == ModeIdle || g.mode == ModeDragging):
		g.tap = tapState{}
		g.pair.id0, g.pair.id1 = g.lowestTwo()
		dist, mid, dx, dy := g.pairGeometry()
		g.pair.prevDist = dist
		g.pair.prevMid = mid
		if math32.Atan2(math32.Abs(dy), math32.Abs(dx)) < math32.Pi/4 {
			g.setMode(ModePanning, sourceTouch)
		} else {
			g.setMode(ModePinching, sourceTouch)
		}
	}
	return Result{}
}

func (g *interpreterImpl) touchMove(ev input.Event) {
	if g.source != sourceTouch {
		return
	}
	g.syncTouches(ev.Touches)
	if g.suppressed {
		return
	}

	switch g.mode {
	case ModeDragging:
		if p, ok := g.touches[g.pointer.id]; ok {
			g.drag(p.X(), p.Y())
		}

	case ModePinching, ModePanning:
		if !g.pairDown() {
			g.degenerate()
			return
		}
		dist, mid, _, _ := g.pairGeometry()
		if g.mode == ModePinching {
			g.pending.Forward += (dist - g.pair.prevDist) * g.pinchSensitivity
		} else {
			g.pending.Right -= (mid.X() - g.pair.prevMid.X()) * g.panSensitivity
			g.pending.Up += (mid.Y() - g.pair.prevMid.Y()) * g.panSensitivity
		}
		g.pair.prevDist = dist
		g.pair.prevMid = mid
	}
}

func (g *interpreterImpl) pairDown() bool {
	_, ok0 := g.touches[g.pair.id0]
	_, ok1 := g.touches[g.pair.id1]
	return ok0 && ok1
}

// degenerate drops a two-finger session that lost a contact; whatever is still down is
// ignored until released.
func (g *interpreterImpl) degenerate() {
	g.logger.Debug("two-finger session lost a contact", zap.Stringer("mode", g.mode))
	g.setMode(ModeIdle, sourceTouch)
	g.suppressed = len(g.touches) > 0
}

func (g *interpreterImpl) touchEnd(ev input.Event) Result {
	if g.source != sourceTouch {
		return Result{}
	}
	last := g.pointer
	g.syncTouches(ev.Touches)

	if len(g.touches) == 0 {
		wasDragging := g.mode == ModeDragging && !g.suppressed
		g.suppressed = false
		g.setMode(ModeIdle, sourceNone)
		if wasDragging {
			return g.clickPick(last.lastX, last.lastY, true)
		}
		return Result{}
	}

	switch g.mode {
	case ModePinching, ModePanning:
		if len(g.touches) < 2 {
			g.degenerate()
			return Result{}
		}
		// A third contact lifted, or one of the pair did and another remains: keep the mode
		// and re-anchor on the lowest two so the next move does not jump.
		g.pair.id0, g.pair.id1 = g.lowestTwo()
		g.pair.prevDist, g.pair.prevMid, _, _ = g.pairGeometry()
	case ModeDragging:
		if _, ok := g.touches[g.pointer.id]; !ok {
			g.setMode(ModeIdle, sourceTouch)
			g.suppressed = true
		}
	}
	return Result{}
}
