package remap

import "github.com/goKeyTouch/keymaps"

//go:generate mockgen -source $GOFILE -destination collaborators_mocks.go -package $GOPACKAGE

// Contacts opens and closes touch contacts. touch.Manager implements it.
type Contacts interface {
	Open(id, x, y int) error
	Close(id int) error
	Tap(id, x, y int) error
	CloseAll()
	MultiTouch() bool
}

// ModifierState answers whether a modifier is currently held.
type ModifierState interface {
	IsDown(mod keymaps.Modifier) bool
}

// Pointer reports the current pointer position.
type Pointer interface {
	Position() (x, y int)
}

// Controller handles the hotkeys that act outside the engine.
type Controller interface {
	// ToggleOverlay flips overlay visibility and returns the new state.
	ToggleOverlay() bool
	ShowHelp()
	ShowStatus()
	// Quit asks the process to stop. Contacts are already drained.
	Quit()
}
