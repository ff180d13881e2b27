package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "pointer_down", PointerDown.String())
	assert.Equal(t, "resize", Resize.String())
	assert.Equal(t, "pointer_leave", PointerLeave.String())
	assert.Equal(t, "unknown", Type(99).String())
}

func TestEventHelpers(t *testing.T) {
	ev := Event{Type: PointerMove, X: 3, Y: 4}
	assert.False(t, ev.AnyButton())
	ev.Buttons[1] = true
	assert.True(t, ev.AnyButton())
	assert.Equal(t, float32(4), ev.Position().Y())

	assert.True(t, Event{Type: TouchCancel}.IsTouch())
	assert.False(t, Event{Type: PointerCancel}.IsTouch())
}
