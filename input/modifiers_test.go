package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goKeyTouch/keymaps"
)

func TestModifiers_EitherSideCounts(t *testing.T) {
	m := NewModifiers()
	assert.False(t, m.IsDown(keymaps.ModShift))

	m.Observe(Event{Key: keymaps.KeyRightShift, Down: true})
	assert.True(t, m.IsDown(keymaps.ModShift))
	assert.False(t, m.IsDown(keymaps.ModCtrl))

	m.Observe(Event{Key: keymaps.KeyLeftShift, Down: true})
	m.Observe(Event{Key: keymaps.KeyRightShift, Down: false})
	assert.True(t, m.IsDown(keymaps.ModShift))

	m.Observe(Event{Key: keymaps.KeyLeftShift, Down: false})
	assert.False(t, m.IsDown(keymaps.ModShift))
}

func TestModifiers_IgnoresOrdinaryKeys(t *testing.T) {
	m := NewModifiers()
	m.Observe(Event{Key: keymaps.KeyA, Down: true})
	for _, mod := range []keymaps.Modifier{keymaps.ModCtrl, keymaps.ModShift, keymaps.ModAlt, keymaps.ModMeta} {
		assert.False(t, m.IsDown(mod))
	}
}

func TestPointerTracker_Clamps(t *testing.T) {
	p := NewPointerTracker(keymaps.Bounds{Width: 800, Height: 600})

	x, y := p.Position()
	assert.Equal(t, 400, x)
	assert.Equal(t, 300, y)

	p.Move(relX, 1000)
	p.Move(relY, -1000)
	x, y = p.Position()
	assert.Equal(t, 800, x)
	assert.Equal(t, 0, y)

	// Wheel and other axes do not move the pointer.
	p.Move(0x08, 5)
	x, y = p.Position()
	assert.Equal(t, 800, x)
	assert.Equal(t, 0, y)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "A", KeyName(keymaps.KeyA))
	assert.Equal(t, "LEFTSHIFT", KeyName(keymaps.KeyLeftShift))
}
