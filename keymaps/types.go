package keymaps

import "fmt"

// Key is a host key code. On Linux this is the evdev KEY_* value.
type Key int

// Valid key codes are kept in a dense range so they can be persisted and
// validated cheaply.
const (
	MinKey Key = 0
	MaxKey Key = 255
)

// Valid reports whether k is inside the accepted key range.
func (k Key) Valid() bool {
	return k >= MinKey && k <= MaxKey
}

// DefaultLabel is the label used when no human readable name is known.
func DefaultLabel(k Key) string {
	return fmt.Sprintf("KEY_%d", int(k))
}

// KeyMapping is the screen position a key taps, plus its display label.
type KeyMapping struct {
	X     int
	Y     int
	Label string
}

// Entry is one row of the mapping table.
type Entry struct {
	Key     Key
	Mapping KeyMapping
}

// HoldPolicy decides what holding a mapped key does.
type HoldPolicy int

const (
	// MaintainContact keeps one touch down from key-down until key-up.
	MaintainContact HoldPolicy = iota
	// ContinuousTap taps once for every key-down, OS repeats included.
	ContinuousTap
)

func (p HoldPolicy) String() string {
	if p == ContinuousTap {
		return "Continuous Tap"
	}
	return "Maintain Touch"
}

// Toggle returns the other policy.
func (p HoldPolicy) Toggle() HoldPolicy {
	if p == ContinuousTap {
		return MaintainContact
	}
	return ContinuousTap
}

// Bounds is the screen size used to clamp coordinates.
type Bounds struct {
	Width  int
	Height int
}

// Clamp limits x and y to [0, Width] x [0, Height].
func (b Bounds) Clamp(x, y int) (int, int) {
	return clamp(x, 0, b.Width), clamp(y, 0, b.Height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snapshot is an immutable copy of the table and its hold policy, in
// ascending key order.
type Snapshot struct {
	Policy  HoldPolicy
	Entries []Entry
}
