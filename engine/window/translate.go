package window

import (
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// translator converts GLFW callback arguments into input events. It remembers the cursor
// position and held buttons so pointer events carry deltas and button state. Cursor
// positions arrive in window coordinates and leave in framebuffer pixels.
type translator struct {
	x, y           float32
	scaleX, scaleY float32
	hasPos         bool
	buttons        [3]bool
	mods           common.Modifier
}

func newTranslator() *translator {
	return &translator{scaleX: 1, scaleY: 1}
}

// setScale records the framebuffer to window ratio. Sizes that are not positive leave the
// axis unscaled.
func (t *translator) setScale(windowWidth, windowHeight, fbWidth, fbHeight int) {
	t.scaleX, t.scaleY = 1, 1
	if windowWidth > 0 && fbWidth > 0 {
		t.scaleX = float32(fbWidth) / float32(windowWidth)
	}
	if windowHeight > 0 && fbHeight > 0 {
		t.scaleY = float32(fbHeight) / float32(windowHeight)
	}
}

// seconds converts a GLFW timestamp into an event time.
func seconds(t float64) time.Duration {
	return time.Duration(t * float64(time.Second))
}

func translateMods(mods glfw.ModifierKey) common.Modifier {
	var m common.Modifier
	if mods&glfw.ModShift != 0 {
		m |= common.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= common.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= common.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= common.ModSuper
	}
	return m
}

func translateButton(b glfw.MouseButton) (common.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return common.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return common.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return common.MouseButtonMiddle, true
	}
	return 0, false
}

// key returns the event for a key callback. ok is false for actions that carry nothing.
func (t *translator) key(at time.Duration, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) (input.Event, bool) {
	t.mods = translateMods(mods)
	ev := input.Event{Time: at, Key: int(key), Mods: t.mods, Buttons: t.buttons}
	switch action {
	case glfw.Press, glfw.Repeat:
		ev.Type = input.KeyDown
	case glfw.Release:
		ev.Type = input.KeyUp
	default:
		return ev, false
	}
	return ev, true
}

func (t *translator) button(at time.Duration, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) (input.Event, bool) {
	btn, ok := translateButton(b)
	if !ok {
		return input.Event{}, false
	}
	t.mods = translateMods(mods)
	ev := input.Event{Time: at, Button: btn, Mods: t.mods, X: t.x, Y: t.y}
	switch action {
	case glfw.Press:
		t.buttons[btn] = true
		ev.Type = input.PointerDown
	case glfw.Release:
		t.buttons[btn] = false
		ev.Type = input.PointerUp
	default:
		return ev, false
	}
	ev.Buttons = t.buttons
	return ev, true
}

func (t *translator) cursor(at time.Duration, x, y float64) input.Event {
	ev := input.Event{
		Type: input.PointerMove, Time: at, Mods: t.mods,
		X: float32(x) * t.scaleX, Y: float32(y) * t.scaleY,
		Buttons: t.buttons,
	}
	if t.hasPos {
		ev.DX = ev.X - t.x
		ev.DY = ev.Y - t.y
	}
	t.x, t.y, t.hasPos = ev.X, ev.Y, true
	return ev
}

// scroll maps the wheel so that scrolling up moves forward.
func (t *translator) scroll(at time.Duration, xoff, yoff float64) input.Event {
	return input.Event{
		Type: input.Scroll, Time: at, Mods: t.mods,
		X: t.x, Y: t.y, DX: float32(xoff), DY: float32(yoff),
		Buttons: t.buttons,
	}
}

// leave returns the events for the cursor leaving the window. A drag in progress is cancelled
// first, since its release would otherwise never arrive. The trailing PointerLeave drops hover.
func (t *translator) leave(at time.Duration) []input.Event {
	var out []input.Event
	if t.buttons != [3]bool{} {
		out = append(out, input.Event{Type: input.PointerCancel, Time: at})
	}
	t.buttons = [3]bool{}
	t.hasPos = false
	return append(out, input.Event{Type: input.PointerLeave, Time: at, Mods: t.mods})
}

func (t *translator) resize(at time.Duration, width, height int) input.Event {
	return input.Event{Type: input.Resize, Time: at, Width: width, Height: height}
}
