package input

import (
	"sync"

	"github.com/goKeyTouch/keymaps"
)

// Relative axis codes from linux/input-event-codes.h.
const (
	relX = 0x00
	relY = 0x01
)

// PointerTracker follows the pointer by integrating relative motion from
// mice, clamped to the screen. It starts at the screen center.
type PointerTracker struct {
	mu     sync.Mutex
	bounds keymaps.Bounds
	x, y   int
}

// NewPointerTracker creates a tracker for a screen of the given bounds.
func NewPointerTracker(bounds keymaps.Bounds) *PointerTracker {
	return &PointerTracker{
		bounds: bounds,
		x:      bounds.Width / 2,
		y:      bounds.Height / 2,
	}
}

// Move applies a relative motion on axis code.
func (p *PointerTracker) Move(code uint16, delta int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch code {
	case relX:
		p.x += int(delta)
	case relY:
		p.y += int(delta)
	default:
		return
	}
	p.x, p.y = p.bounds.Clamp(p.x, p.y)
}

// Position returns the current pointer position.
func (p *PointerTracker) Position() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y
}
