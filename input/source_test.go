package input

import (
	"context"
	"testing"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goKeyTouch/keymaps"
)

type recordedKey struct {
	key  int
	down bool
}

type fakeKeyboard struct {
	keys []recordedKey
}

func (f *fakeKeyboard) KeyDown(key int) error {
	f.keys = append(f.keys, recordedKey{key, true})
	return nil
}

func (f *fakeKeyboard) KeyUp(key int) error {
	f.keys = append(f.keys, recordedKey{key, false})
	return nil
}

func keyEvent(dev *Device, code keymaps.Key, value int32) rawEvent {
	return rawEvent{dev: dev, ev: evdev.InputEvent{Type: evdev.EV_KEY, Code: uint16(code), Value: value}}
}

func TestSource_DeliverTranslatesKeyEvents(t *testing.T) {
	var got []Event
	s := NewSource(Options{})
	s.SetHandler(HandlerFunc(func(ev Event) Verdict {
		got = append(got, ev)
		return PassThru
	}))

	s.deliver(keyEvent(nil, keymaps.KeyA, 1))
	s.deliver(keyEvent(nil, keymaps.KeyA, 2))
	s.deliver(keyEvent(nil, keymaps.KeyA, 0))
	// Buttons and sync events never reach the handler.
	s.deliver(rawEvent{ev: evdev.InputEvent{Type: evdev.EV_KEY, Code: 0x110, Value: 1}})
	s.deliver(rawEvent{ev: evdev.InputEvent{Type: evdev.EV_SYN}})

	assert.Equal(t, []Event{
		{Key: keymaps.KeyA, Down: true},
		{Key: keymaps.KeyA, Down: true, Repeat: true},
		{Key: keymaps.KeyA, Down: false},
	}, got)
}

func TestSource_DeliverTracksModifiersBeforeHandler(t *testing.T) {
	s := NewSource(Options{})
	var ctrlSeen bool
	s.SetHandler(HandlerFunc(func(ev Event) Verdict {
		if ev.Key == keymaps.KeyR {
			ctrlSeen = s.Modifiers().IsDown(keymaps.ModCtrl)
		}
		return PassThru
	}))

	s.deliver(keyEvent(nil, keymaps.KeyLeftCtrl, 1))
	s.deliver(keyEvent(nil, keymaps.KeyR, 1))
	assert.True(t, ctrlSeen)
}

func TestSource_DeliverMovesPointer(t *testing.T) {
	pointer := NewPointerTracker(keymaps.Bounds{Width: 100, Height: 100})
	s := NewSource(Options{Pointer: pointer})

	s.deliver(rawEvent{ev: evdev.InputEvent{Type: evdev.EV_REL, Code: relX, Value: 10}})
	s.deliver(rawEvent{ev: evdev.InputEvent{Type: evdev.EV_REL, Code: relY, Value: -100}})

	x, y := pointer.Position()
	assert.Equal(t, 60, x)
	assert.Equal(t, 0, y)
}

func TestSource_HandlerPanicIsContained(t *testing.T) {
	s := NewSource(Options{})
	s.SetHandler(HandlerFunc(func(Event) Verdict { panic("boom") }))

	assert.NotPanics(t, func() { s.deliver(keyEvent(nil, keymaps.KeyA, 1)) })
}

func TestSource_GrabbedPassThrough(t *testing.T) {
	kb := &fakeKeyboard{}
	s := NewSource(Options{})
	s.keyboard = kb
	dev := &Device{Name: "kbd", Keyboard: true, grabbed: true}

	mute := map[keymaps.Key]bool{keymaps.KeyM: true}
	s.SetHandler(HandlerFunc(func(ev Event) Verdict {
		if ev.Down && mute[ev.Key] {
			return Mute
		}
		return PassThru
	}))

	s.deliver(keyEvent(dev, keymaps.KeyA, 1))
	s.deliver(keyEvent(dev, keymaps.KeyA, 2))
	s.deliver(keyEvent(dev, keymaps.KeyA, 0))
	// A muted down also mutes its up, whatever the handler says for the up.
	s.deliver(keyEvent(dev, keymaps.KeyM, 1))
	s.deliver(keyEvent(dev, keymaps.KeyM, 0))
	s.deliver(keyEvent(dev, keymaps.KeyD, 1))
	s.deliver(keyEvent(dev, keymaps.KeyD, 0))

	assert.Equal(t, []recordedKey{
		{int(keymaps.KeyA), true},
		{int(keymaps.KeyA), false},
		{int(keymaps.KeyD), true},
		{int(keymaps.KeyD), false},
	}, kb.keys)
}

func TestSource_UngrabbedDeviceIsNotForwarded(t *testing.T) {
	kb := &fakeKeyboard{}
	s := NewSource(Options{})
	s.keyboard = kb

	s.deliver(keyEvent(&Device{Keyboard: true}, keymaps.KeyA, 1))
	assert.Empty(t, kb.keys)
}

func TestSource_DoRunsOnDispatchGoroutine(t *testing.T) {
	s := NewSource(Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	ran := make(chan struct{})
	require.True(t, s.Do(func() { close(ran) }))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}

	cancel()
	require.NoError(t, <-done)
	assert.False(t, s.Do(func() {}))
}
