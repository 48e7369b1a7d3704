// Package input reads key transitions from evdev keyboards and hands them,
// one at a time, to a single registered handler.
package input

import "github.com/goKeyTouch/keymaps"

// Event is one key transition.
type Event struct {
	Key  keymaps.Key
	Down bool
	// Repeat is set for OS generated auto-repeat downs. Handlers that need
	// to tell a fresh press from a repeat should track held keys instead.
	Repeat bool
}

// Verdict tells the source what to do with a grabbed key event.
type Verdict int

const (
	// PassThru re-emits the event to the rest of the system.
	PassThru Verdict = iota
	// Mute swallows the event.
	Mute
)

// Handler consumes key events. HandleKey is always called from the same
// goroutine and must return quickly.
type Handler interface {
	HandleKey(ev Event) Verdict
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event) Verdict

// HandleKey implements Handler.
func (f HandlerFunc) HandleKey(ev Event) Verdict {
	return f(ev)
}
