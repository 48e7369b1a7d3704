// Package touch tracks synthetic touch contacts and drives the injector that
// delivers them to the host.
package touch

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxContacts is the number of simultaneous contacts the host accepts.
const MaxContacts = 10

// DefaultTapHold is how long a tap keeps its contact down.
const DefaultTapHold = 50 * time.Millisecond

var (
	ErrDuplicateContact = errors.New("contact already active")
	ErrNoSuchContact    = errors.New("no active contact")
	ErrInjectionFailed  = errors.New("touch injection failed")
	ErrInvalidID        = errors.New("contact id out of range")
)

// IDForKey maps a key code onto a contact id.
func IDForKey(key int) int {
	id := key % MaxContacts
	if id < 0 {
		id += MaxContacts
	}
	return id
}

// Contact is a touch point that is currently down.
type Contact struct {
	ID     int
	X      int
	Y      int
	Active bool
}

type contact struct {
	Contact
	gen   uint64
	timer timer
}

type timer interface {
	Stop() bool
}

func afterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

// Manager owns the set of active contacts.
//
// It is driven from the input dispatch goroutine, except for tap releases
// which fire on timers; the mutex serializes both.
type Manager struct {
	injector Injector
	multi    bool
	tapHold  time.Duration

	mu     sync.Mutex
	active map[int]*contact
	gen    uint64

	afterFunc func(time.Duration, func()) timer
}

// NewManager creates a manager injecting through injector. A zero tapHold
// uses DefaultTapHold.
func NewManager(injector Injector, tapHold time.Duration) *Manager {
	if tapHold <= 0 {
		tapHold = DefaultTapHold
	}
	return &Manager{
		injector:  injector,
		multi:     injector.SupportsMultiTouch(),
		tapHold:   tapHold,
		active:    map[int]*contact{},
		afterFunc: afterFunc,
	}
}

// MultiTouch reports whether real touch contacts are injected, as opposed to
// the pointer click fallback.
func (m *Manager) MultiTouch() bool {
	return m.multi
}

// Open puts contact id down at x, y.
//
// In pointer fallback mode the contact is a single click and stays recorded
// until Close, which then injects nothing.
func (m *Manager) Open(id, x, y int) error {
	if err := checkID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[id]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateContact, id)
	}
	return m.open(id, x, y)
}

// Close lifts contact id. The contact is forgotten even if the injector
// fails so bookkeeping never gets stuck.
func (m *Manager) Close(id int) error {
	if err := checkID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.active[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNoSuchContact, id)
	}
	return m.close(c)
}

// Tap puts contact id down and schedules its release after the tap hold. It
// returns without waiting for the release.
//
// A previous tap on the same id that has not been released yet is released
// first. A contact held open through Open is never stolen.
func (m *Manager) Tap(id, x, y int) error {
	if err := checkID(id); err != nil {
		return err
	}

	if !m.multi {
		if err := m.injector.Click(x, y); err != nil {
			return fmt.Errorf("%w: click at %d,%d: %w", ErrInjectionFailed, x, y, err)
		}
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.active[id]; ok {
		if prev.timer == nil {
			return fmt.Errorf("%w: id %d is held", ErrDuplicateContact, id)
		}
		if err := m.close(prev); err != nil {
			log.Warn().Err(err).Int("id", id).Msg("failed to release previous tap")
		}
	}

	if err := m.open(id, x, y); err != nil {
		return err
	}

	c := m.active[id]
	gen := c.gen
	c.timer = m.afterFunc(m.tapHold, func() { m.release(id, gen) })
	return nil
}

// CloseAll lifts every active contact. Failures are logged and the drain
// carries on with the remaining contacts.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.ids() {
		if err := m.close(m.active[id]); err != nil {
			log.Warn().Err(err).Int("id", id).Msg("failed to close contact during drain")
		}
	}
}

// Active returns the active contacts ordered by id.
func (m *Manager) Active() []Contact {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Contact, 0, len(m.active))
	for _, id := range m.ids() {
		out = append(out, m.active[id].Contact)
	}
	return out
}

// IsActive reports whether contact id is down.
func (m *Manager) IsActive(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.active[id]
	return ok
}

// Len returns the number of active contacts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// open must be called with mu held.
func (m *Manager) open(id, x, y int) error {
	var err error
	if m.multi {
		err = m.injector.OpenContact(id, x, y)
	} else {
		err = m.injector.Click(x, y)
	}
	if err != nil {
		return fmt.Errorf("%w: open id %d at %d,%d: %w", ErrInjectionFailed, id, x, y, err)
	}

	m.gen++
	m.active[id] = &contact{
		Contact: Contact{ID: id, X: x, Y: y, Active: true},
		gen:     m.gen,
	}
	return nil
}

// close must be called with mu held.
func (m *Manager) close(c *contact) error {
	if c.timer != nil {
		c.timer.Stop()
	}
	delete(m.active, c.ID)

	if !m.multi {
		return nil
	}
	if err := m.injector.CloseContact(c.ID, c.X, c.Y); err != nil {
		return fmt.Errorf("%w: close id %d: %w", ErrInjectionFailed, c.ID, err)
	}
	return nil
}

// release ends a tap, unless the contact it was scheduled for is gone.
func (m *Manager) release(id int, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.active[id]
	if !ok || c.gen != gen {
		return
	}
	c.timer = nil
	if err := m.close(c); err != nil {
		log.Warn().Err(err).Int("id", id).Msg("failed to release tap")
	}
}

func (m *Manager) ids() []int {
	ids := make([]int, 0, len(m.active))
	for id := range m.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func checkID(id int) error {
	if id < 0 || id >= MaxContacts {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}
