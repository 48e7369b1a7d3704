package keymaps

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidKey is returned when a key code is outside MinKey..MaxKey.
var ErrInvalidKey = errors.New("invalid key code")

// Table stores key to screen position mappings and the hold policy.
//
// Table is not safe for concurrent use. It is owned by the input dispatch
// goroutine; other goroutines only ever see Snapshots.
type Table struct {
	bounds    Bounds
	mappings  map[Key]KeyMapping
	policy    HoldPolicy
	observers []func(Snapshot)
}

// NewTable creates an empty table clamping coordinates to bounds.
func NewTable(bounds Bounds) *Table {
	return &Table{
		bounds:   bounds,
		mappings: map[Key]KeyMapping{},
	}
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// Observers must not block.
func (t *Table) Subscribe(fn func(Snapshot)) {
	t.observers = append(t.observers, fn)
}

// Put stores or overwrites the mapping for key. Coordinates are clamped to
// the screen and an empty label is replaced by DefaultLabel.
func (t *Table) Put(key Key, x, y int, label string) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidKey, int(key))
	}
	t.mappings[key] = t.normalize(key, x, y, label)
	t.changed()
	return nil
}

// Get returns the mapping for key.
func (t *Table) Get(key Key) (KeyMapping, bool) {
	m, ok := t.mappings[key]
	return m, ok
}

// Remove deletes the mapping for key and reports whether there was one.
func (t *Table) Remove(key Key) bool {
	if _, ok := t.mappings[key]; !ok {
		return false
	}
	delete(t.mappings, key)
	t.changed()
	return true
}

// Clear removes every mapping.
func (t *Table) Clear() {
	t.mappings = map[Key]KeyMapping{}
	t.changed()
}

// Len returns the number of mappings.
func (t *Table) Len() int {
	return len(t.mappings)
}

// All returns the mappings in ascending key order.
func (t *Table) All() []Entry {
	entries := make([]Entry, 0, len(t.mappings))
	for k, m := range t.mappings {
		entries = append(entries, Entry{Key: k, Mapping: m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Policy returns the current hold policy.
func (t *Table) Policy() HoldPolicy {
	return t.policy
}

// SetPolicy changes the hold policy. It is persisted with the mappings.
func (t *Table) SetPolicy(p HoldPolicy) {
	t.policy = p
	t.changed()
}

// Snapshot returns a copy of the table state.
func (t *Table) Snapshot() Snapshot {
	return Snapshot{Policy: t.policy, Entries: t.All()}
}

// Replace swaps the whole table for s, typically after loading from disk.
// Invalid keys are dropped and coordinates clamped; the number of dropped
// entries is returned.
func (t *Table) Replace(s Snapshot) int {
	dropped := 0
	mappings := make(map[Key]KeyMapping, len(s.Entries))
	for _, e := range s.Entries {
		if !e.Key.Valid() {
			dropped++
			continue
		}
		mappings[e.Key] = t.normalize(e.Key, e.Mapping.X, e.Mapping.Y, e.Mapping.Label)
	}
	t.mappings = mappings
	t.policy = s.Policy
	t.changed()
	return dropped
}

func (t *Table) normalize(key Key, x, y int, label string) KeyMapping {
	x, y = t.bounds.Clamp(x, y)
	if label == "" {
		label = DefaultLabel(key)
	}
	return KeyMapping{X: x, Y: y, Label: label}
}

func (t *Table) changed() {
	if len(t.observers) == 0 {
		return
	}
	s := t.Snapshot()
	for _, fn := range t.observers {
		fn(s)
	}
}
