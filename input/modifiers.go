package input

import (
	"sync"

	"github.com/goKeyTouch/keymaps"
)

// Modifiers tracks which modifier keys are held, from the event stream.
type Modifiers struct {
	mu   sync.RWMutex
	held map[keymaps.Key]bool
}

// NewModifiers creates an empty tracker.
func NewModifiers() *Modifiers {
	return &Modifiers{held: map[keymaps.Key]bool{}}
}

// Observe updates the tracker with ev. Non modifier keys are ignored.
func (m *Modifiers) Observe(ev Event) {
	if !keymaps.IsModifier(ev.Key) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if ev.Down {
		m.held[ev.Key] = true
	} else {
		delete(m.held, ev.Key)
	}
}

// IsDown reports whether either key of modifier mod is held.
func (m *Modifiers) IsDown(mod keymaps.Modifier) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k := range m.held {
		if km, _ := keymaps.ModifierOf(k); km == mod {
			return true
		}
	}
	return false
}
