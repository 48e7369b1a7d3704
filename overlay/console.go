// Package overlay shows where each mapped key touches the screen, as a text
// table written to a terminal.
package overlay

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/goKeyTouch/keymaps"
)

// Console renders the mapping table to w while it is visible. It is safe for
// concurrent use.
type Console struct {
	mu        sync.Mutex
	w         io.Writer
	visible   bool
	destroyed bool
	snap      keymaps.Snapshot
}

// NewConsole creates a hidden overlay writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// SetVisible shows or hides the overlay. Showing it draws it.
func (c *Console) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed || c.visible == visible {
		return
	}
	c.visible = visible
	if visible {
		c.redraw()
	}
}

// Toggle flips visibility and returns the new state.
func (c *Console) Toggle() bool {
	c.mu.Lock()
	visible := !c.visible
	c.mu.Unlock()

	c.SetVisible(visible)
	return c.Visible()
}

// Visible reports whether the overlay is shown.
func (c *Console) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// UpdateMappings replaces the rendered mappings and redraws if visible.
func (c *Console) UpdateMappings(snap keymaps.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = snap
	if c.visible && !c.destroyed {
		c.redraw()
	}
}

// Destroy hides the overlay for good.
func (c *Console) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
	c.destroyed = true
}

func (c *Console) redraw() {
	fmt.Fprintf(c.w, "--- overlay: %d mapping(s), %s ---\n", len(c.snap.Entries), c.snap.Policy)
	if len(c.snap.Entries) == 0 {
		return
	}
	WriteTable(c.w, c.snap.Entries)
}

// WriteTable prints entries as a key, label, position table.
func WriteTable(w io.Writer, entries []keymaps.Entry) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("Key", "Label", "X", "Y")
	for _, e := range entries {
		table.Append([]string{
			strconv.Itoa(int(e.Key)),
			e.Mapping.Label,
			strconv.Itoa(e.Mapping.X),
			strconv.Itoa(e.Mapping.Y),
		})
	}
	table.Render()
}
