// Package remap turns key transitions into touch contacts.
//
// The Engine runs on the input dispatch goroutine. It never sleeps and never
// lets an error escape HandleKey.
package remap

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goKeyTouch/input"
	"github.com/goKeyTouch/keymaps"
	"github.com/goKeyTouch/touch"
)

// ErrIDConflict is reported when a key would take over a contact id that a
// different held key already owns.
var ErrIDConflict = errors.New("contact id claimed by another key")

// Mode is the top level behavior of the engine.
type Mode int

const (
	Idle Mode = iota
	Recording
	Mapping
)

func (m Mode) String() string {
	switch m {
	case Recording:
		return "RECORDING"
	case Mapping:
		return "MAPPING"
	}
	return "IDLE"
}

// LabelFunc names a key for display.
type LabelFunc func(keymaps.Key) string

// Options wires an Engine to its collaborators.
type Options struct {
	Table      *keymaps.Table
	Contacts   Contacts
	Router     *Router
	Pointer    Pointer
	Label      LabelFunc
	Controller Controller
}

type hold struct {
	id   int
	open bool
}

// Engine consumes key events and drives the mapping table and the touch
// contacts.
type Engine struct {
	table      *keymaps.Table
	contacts   Contacts
	router     *Router
	pointer    Pointer
	label      LabelFunc
	controller Controller

	mode  Mode
	armed bool

	// holds is the set of keys held under MaintainContact.
	holds map[keymaps.Key]hold
	// claims maps an open contact id back to the key holding it.
	claims map[int]keymaps.Key
	// chords are keys whose down was taken by the router.
	chords map[keymaps.Key]bool
}

// NewEngine creates an engine in Idle mode.
func NewEngine(opts Options) *Engine {
	if opts.Label == nil {
		opts.Label = keymaps.DefaultLabel
	}
	return &Engine{
		table:      opts.Table,
		contacts:   opts.Contacts,
		router:     opts.Router,
		pointer:    opts.Pointer,
		label:      opts.Label,
		controller: opts.Controller,
		mode:       Idle,
		holds:      map[keymaps.Key]hold{},
		claims:     map[int]keymaps.Key{},
		chords:     map[keymaps.Key]bool{},
	}
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Policy returns the current hold policy.
func (e *Engine) Policy() keymaps.HoldPolicy {
	return e.table.Policy()
}

// Armed reports whether the next key press removes its mapping.
func (e *Engine) Armed() bool {
	return e.armed
}

// Holding returns the keys that currently hold an open contact.
func (e *Engine) Holding() []keymaps.Key {
	keys := make([]keymaps.Key, 0, len(e.holds))
	for k, h := range e.holds {
		if h.open {
			keys = append(keys, k)
		}
	}
	return keys
}

// HandleKey implements input.Handler.
func (e *Engine) HandleKey(ev input.Event) input.Verdict {
	if v, ok := e.route(ev); ok {
		return v
	}

	if ev.Down && e.armed && !keymaps.IsModifier(ev.Key) {
		e.armed = false
		e.removeMapping(ev.Key)
		return input.Mute
	}

	switch e.mode {
	case Recording:
		return e.record(ev)
	case Mapping:
		return e.remap(ev)
	}
	return input.PassThru
}

func (e *Engine) route(ev input.Event) (input.Verdict, bool) {
	if !ev.Down {
		if e.chords[ev.Key] {
			delete(e.chords, ev.Key)
			return input.Mute, true
		}
		return input.PassThru, false
	}

	if e.chords[ev.Key] {
		// key repeat of a chord already dispatched
		return input.Mute, true
	}
	action, ok := e.router.Match(ev.Key)
	if !ok {
		return input.PassThru, false
	}
	e.chords[ev.Key] = true
	e.dispatch(action)
	return input.Mute, true
}

func (e *Engine) dispatch(action Action) {
	log.Debug().Str("action", action.String()).Msg("hotkey")

	switch action {
	case ActionRecord:
		e.SetMode(Recording)
	case ActionMap:
		e.SetMode(Mapping)
	case ActionIdle:
		e.SetMode(Idle)
	case ActionToggleOverlay:
		visible := e.controller.ToggleOverlay()
		log.Info().Bool("visible", visible).Msg("overlay toggled")
	case ActionToggleHold:
		e.TogglePolicy()
	case ActionClear:
		e.ClearMappings()
	case ActionRemoveNext:
		e.armed = true
		log.Info().Msg("press a key to remove its mapping")
	case ActionHelp:
		e.controller.ShowHelp()
	case ActionQuit:
		e.Quit()
	}
}

func (e *Engine) record(ev input.Event) input.Verdict {
	if keymaps.IsModifier(ev.Key) {
		return input.PassThru
	}
	if !ev.Down {
		return input.Mute
	}

	x, y := e.pointer.Position()
	label := e.label(ev.Key)
	if err := e.table.Put(ev.Key, x, y, label); err != nil {
		log.Warn().Err(err).Int("key", int(ev.Key)).Msg("mapping rejected")
		return input.Mute
	}

	m, _ := e.table.Get(ev.Key)
	log.Info().Int("key", int(ev.Key)).Str("label", m.Label).Int("x", m.X).Int("y", m.Y).
		Msg("mapped key")
	return input.Mute
}

func (e *Engine) remap(ev input.Event) input.Verdict {
	// A held key is released even if its mapping went away meanwhile.
	if !ev.Down {
		if h, ok := e.holds[ev.Key]; ok {
			e.release(ev.Key, h)
			return input.Mute
		}
	}

	m, ok := e.table.Get(ev.Key)
	if !ok {
		return input.PassThru
	}
	id := touch.IDForKey(int(ev.Key))

	if e.table.Policy() == keymaps.ContinuousTap {
		if ev.Down {
			if err := e.contacts.Tap(id, m.X, m.Y); err != nil {
				logContactError(err, ev.Key, id, m).Msg("tap failed")
			}
		}
		return input.Mute
	}

	if !ev.Down {
		return input.Mute
	}
	if _, held := e.holds[ev.Key]; held {
		// auto repeat of a key that is already down
		return input.Mute
	}
	if owner, claimed := e.claims[id]; claimed && owner != ev.Key {
		err := fmt.Errorf("%w: id %d held by key %d", ErrIDConflict, id, owner)
		logContactError(err, ev.Key, id, m).Msg("contact refused")
		return input.Mute
	}

	h := hold{id: id}
	if err := e.contacts.Open(id, m.X, m.Y); err != nil {
		logContactError(err, ev.Key, id, m).Msg("touch down failed")
	} else {
		h.open = true
		e.claims[id] = ev.Key
	}
	e.holds[ev.Key] = h
	return input.Mute
}

func (e *Engine) release(key keymaps.Key, h hold) {
	delete(e.holds, key)
	// A failed open left nothing in the manager, so there is nothing to close.
	if !h.open {
		return
	}
	delete(e.claims, h.id)
	if err := e.contacts.Close(h.id); err != nil {
		log.Warn().Err(err).Int("key", int(key)).Int("id", h.id).Msg("touch up failed")
	}
}

func (e *Engine) removeMapping(key keymaps.Key) {
	if h, ok := e.holds[key]; ok {
		e.release(key, h)
	}
	if e.table.Remove(key) {
		log.Info().Int("key", int(key)).Msg("removed mapping")
	} else {
		log.Info().Int("key", int(key)).Msg("key was not mapped")
	}
}

// SetMode closes every contact and switches mode.
func (e *Engine) SetMode(m Mode) {
	e.drain()
	e.armed = false
	if e.mode != m {
		log.Info().Stringer("from", e.mode).Stringer("to", m).Msg("mode changed")
	}
	e.mode = m
	e.controller.ShowStatus()
}

// TogglePolicy closes every contact and flips the hold policy.
func (e *Engine) TogglePolicy() {
	e.drain()
	p := e.table.Policy().Toggle()
	e.table.SetPolicy(p)
	log.Info().Stringer("policy", p).Msg("hold behavior changed")
}

// ClearMappings closes every contact and empties the mapping table.
func (e *Engine) ClearMappings() {
	e.drain()
	e.table.Clear()
	log.Info().Msg("all mappings cleared")
}

// Quit shuts the engine down and asks the controller to stop the process.
func (e *Engine) Quit() {
	e.Shutdown()
	e.controller.Quit()
}

// Shutdown closes every contact and returns to Idle. It is safe to call
// more than once.
func (e *Engine) Shutdown() {
	e.drain()
	e.armed = false
	e.mode = Idle
}

func (e *Engine) drain() {
	e.contacts.CloseAll()
	clear(e.holds)
	clear(e.claims)
}

func logContactError(err error, key keymaps.Key, id int, m keymaps.KeyMapping) *zerolog.Event {
	ev := log.Warn()
	if errors.Is(err, touch.ErrDuplicateContact) || errors.Is(err, touch.ErrNoSuchContact) {
		ev = log.Error()
	}
	return ev.Err(err).Int("key", int(key)).Int("id", id).Int("x", m.X).Int("y", m.Y)
}
