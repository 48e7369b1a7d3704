package remap

import (
	"sort"
	"strings"

	"github.com/goKeyTouch/keymaps"
)

// Action is what a reserved chord does.
type Action int

const (
	ActionNone Action = iota
	ActionRecord
	ActionMap
	ActionIdle
	ActionToggleOverlay
	ActionToggleHold
	ActionClear
	ActionRemoveNext
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRecord:
		return "Enter RECORDING mode"
	case ActionMap:
		return "Enter MAPPING mode"
	case ActionIdle:
		return "Enter IDLE mode"
	case ActionToggleOverlay:
		return "Toggle display overlay"
	case ActionToggleHold:
		return "Toggle hold behavior (hold touch vs repeated taps)"
	case ActionClear:
		return "Clear all mappings"
	case ActionRemoveNext:
		return "Remove the mapping of the next key pressed"
	case ActionHelp:
		return "Show this help"
	case ActionQuit:
		return "Quit application"
	}
	return "None"
}

// Binding ties a chord key to an action.
type Binding struct {
	Key    keymaps.Key
	Action Action
}

// DefaultBindings are the Ctrl+Shift chords.
func DefaultBindings() []Binding {
	return []Binding{
		{keymaps.KeyR, ActionRecord},
		{keymaps.KeyM, ActionMap},
		{keymaps.KeyI, ActionIdle},
		{keymaps.KeyD, ActionToggleOverlay},
		{keymaps.KeyT, ActionToggleHold},
		{keymaps.KeyC, ActionClear},
		{keymaps.KeyDelete, ActionRemoveNext},
		{keymaps.KeyH, ActionHelp},
		{keymaps.KeyQ, ActionQuit},
	}
}

// Router recognizes reserved chords: two held modifiers plus a key.
type Router struct {
	mods     ModifierState
	chord    [2]keymaps.Modifier
	bindings map[keymaps.Key]Action
}

// NewRouter creates a Ctrl+Shift router. Nil bindings uses DefaultBindings.
func NewRouter(mods ModifierState, bindings []Binding) *Router {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	r := &Router{
		mods:     mods,
		chord:    [2]keymaps.Modifier{keymaps.ModCtrl, keymaps.ModShift},
		bindings: make(map[keymaps.Key]Action, len(bindings)),
	}
	for _, b := range bindings {
		r.bindings[b.Key] = b.Action
	}
	return r
}

// Match returns the action bound to key if the chord modifiers are held.
func (r *Router) Match(key keymaps.Key) (Action, bool) {
	action, ok := r.bindings[key]
	if !ok {
		return ActionNone, false
	}
	for _, mod := range r.chord {
		if !r.mods.IsDown(mod) {
			return ActionNone, false
		}
	}
	return action, true
}

// Bindings lists the chords in action order.
func (r *Router) Bindings() []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for k, a := range r.bindings {
		out = append(out, Binding{Key: k, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// ChordName renders a binding as e.g. "Ctrl+Shift+R".
func (r *Router) ChordName(key keymaps.Key, name func(keymaps.Key) string) string {
	parts := make([]string, 0, 3)
	for _, mod := range r.chord {
		parts = append(parts, mod.String())
	}
	return strings.Join(append(parts, name(key)), "+")
}
