package remap

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/goKeyTouch/keymaps"
)

// Status is what the status printout shows.
type Status struct {
	Mode       Mode
	Policy     keymaps.HoldPolicy
	Overlay    bool
	Mappings   int
	MultiTouch bool
	Armed      bool
}

// Status reports the engine state. Overlay is left for the caller to fill.
func (e *Engine) Status() Status {
	return Status{
		Mode:       e.mode,
		Policy:     e.table.Policy(),
		Mappings:   e.table.Len(),
		MultiTouch: e.contacts.MultiTouch(),
		Armed:      e.armed,
	}
}

// WriteStatus prints st in the form shown on mode changes.
func WriteStatus(w io.Writer, st Status) {
	injection := "multi-touch"
	if !st.MultiTouch {
		injection = "mouse click fallback"
	}
	overlay := "HIDDEN"
	if st.Overlay {
		overlay = "VISIBLE"
	}

	fmt.Fprintln(w, "=== Current Status ===")
	fmt.Fprintf(w, "Mode: %s\n", st.Mode)
	fmt.Fprintf(w, "Display: %s\n", overlay)
	fmt.Fprintf(w, "Hold behavior: %s\n", st.Policy)
	fmt.Fprintf(w, "Mappings: %d\n", st.Mappings)
	fmt.Fprintf(w, "Touch injection: %s\n", injection)
	if st.Armed {
		fmt.Fprintln(w, "Next key press removes its mapping")
	}
}

// WriteHelp prints the hotkey table.
func WriteHelp(w io.Writer, r *Router, name LabelFunc) {
	fmt.Fprintln(w, "=== Hotkeys ===")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("Chord", "Action")
	for _, b := range r.Bindings() {
		table.Append([]string{r.ChordName(b.Key, name), b.Action.String()})
	}
	table.Render()

	fmt.Fprintln(w, "RECORDING: move the pointer over a target and press a key to map it there.")
	fmt.Fprintln(w, "MAPPING: mapped keys touch the screen at their position.")
}
