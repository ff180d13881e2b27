package window

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, seconds(1.5))
}

func TestTranslateMods(t *testing.T) {
	tests := []struct {
		name string
		in   glfw.ModifierKey
		want common.Modifier
	}{
		{"none", 0, 0},
		{"shift", glfw.ModShift, common.ModShift},
		{"alt", glfw.ModAlt, common.ModAlt},
		{"shift control", glfw.ModShift | glfw.ModControl, common.ModShift | common.ModControl},
		{"super", glfw.ModSuper, common.ModSuper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateMods(tt.in))
		})
	}
}

func TestKeyEvents(t *testing.T) {
	tr := newTranslator()

	ev, ok := tr.key(time.Second, glfw.KeyW, glfw.Press, glfw.ModShift)
	require.True(t, ok)
	assert.Equal(t, input.KeyDown, ev.Type)
	assert.Equal(t, common.KeyW, ev.Key)
	assert.True(t, ev.Mods.Has(common.ModShift))

	ev, ok = tr.key(time.Second, glfw.KeyW, glfw.Repeat, 0)
	require.True(t, ok)
	assert.Equal(t, input.KeyDown, ev.Type)

	ev, ok = tr.key(time.Second, glfw.KeySpace, glfw.Release, 0)
	require.True(t, ok)
	assert.Equal(t, input.KeyUp, ev.Type)
	assert.Equal(t, common.KeySpace, ev.Key)
}

func TestPointerEventsCarryPositionAndButtons(t *testing.T) {
	tr := newTranslator()

	first := tr.cursor(0, 100, 50)
	assert.Equal(t, input.PointerMove, first.Type)
	assert.Zero(t, first.DX, "no delta before the first position is known")

	down, ok := tr.button(time.Millisecond, glfw.MouseButtonLeft, glfw.Press, 0)
	require.True(t, ok)
	assert.Equal(t, input.PointerDown, down.Type)
	assert.Equal(t, common.MouseButtonLeft, down.Button)
	assert.Equal(t, float32(100), down.X)
	assert.True(t, down.Buttons[common.MouseButtonLeft])

	drag := tr.cursor(2*time.Millisecond, 110, 45)
	assert.Equal(t, float32(10), drag.DX)
	assert.Equal(t, float32(-5), drag.DY)
	assert.True(t, drag.AnyButton())

	up, ok := tr.button(3*time.Millisecond, glfw.MouseButtonLeft, glfw.Release, 0)
	require.True(t, ok)
	assert.Equal(t, input.PointerUp, up.Type)
	assert.False(t, up.AnyButton())

	_, ok = tr.button(0, glfw.MouseButton4, glfw.Press, 0)
	assert.False(t, ok)
}

func TestCursorScalesToFramebufferPixels(t *testing.T) {
	tr := newTranslator()
	tr.setScale(1280, 720, 2560, 1440)

	first := tr.cursor(0, 640, 360)
	assert.Equal(t, float32(1280), first.X)
	assert.Equal(t, float32(720), first.Y)

	next := tr.cursor(time.Millisecond, 650, 355)
	assert.Equal(t, float32(20), next.DX)
	assert.Equal(t, float32(-10), next.DY)

	// button events report the scaled position
	down, ok := tr.button(2*time.Millisecond, glfw.MouseButtonLeft, glfw.Press, 0)
	require.True(t, ok)
	assert.Equal(t, float32(1300), down.X)
	assert.Equal(t, float32(710), down.Y)

	tr.setScale(0, 720, 2560, 1440)
	assert.Equal(t, float32(1), tr.scaleX)
	assert.Equal(t, float32(2), tr.scaleY)
}

func TestLeaveCancelsOnlyHeldDrag(t *testing.T) {
	tr := newTranslator()

	evs := tr.leave(0)
	require.Len(t, evs, 1)
	assert.Equal(t, input.PointerLeave, evs[0].Type)

	tr.button(0, glfw.MouseButtonRight, glfw.Press, 0)
	evs = tr.leave(time.Millisecond)
	require.Len(t, evs, 2)
	assert.Equal(t, input.PointerCancel, evs[0].Type)
	assert.Equal(t, input.PointerLeave, evs[1].Type)
	assert.False(t, tr.buttons[common.MouseButtonRight])
}

func TestScrollAndResize(t *testing.T) {
	tr := newTranslator()
	tr.cursor(0, 5, 6)

	s := tr.scroll(0, 0, 1)
	assert.Equal(t, input.Scroll, s.Type)
	assert.Equal(t, float32(1), s.DY)
	assert.Equal(t, float32(5), s.X)

	r := tr.resize(0, 800, 600)
	assert.Equal(t, input.Resize, r.Type)
	assert.Equal(t, 800, r.Width)
	assert.Equal(t, 600, r.Height)
}
