package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	v := Viewport{Left: 10, Top: 20, Width: 800, Height: 400}
	assert.Equal(t, float32(810), v.Right())
	assert.Equal(t, float32(420), v.Bottom())
	assert.Equal(t, float32(2), v.Aspect())
	assert.True(t, v.Contains(10, 20))
	assert.False(t, v.Contains(5, 20))
	assert.False(t, v.Empty())

	empty := NewViewport(0, 300)
	assert.True(t, empty.Empty())
	assert.Equal(t, float32(1), empty.Aspect())
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModAlt
	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModShift|ModAlt))
	assert.False(t, m.Has(ModControl))
}

func TestOrNotSpecified(t *testing.T) {
	assert.Equal(t, NotSpecified, OrNotSpecified(""))
	assert.Equal(t, "zone A", OrNotSpecified("zone A"))
	assert.Equal(t, 3, Coalesce(0, 3, 4))
}
