package input

import (
	"strings"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goKeyTouch/keymaps"
)

// KeyName returns a short human readable name for key, such as "A" or
// "LEFTSHIFT". Unknown codes get keymaps.DefaultLabel.
func KeyName(key keymaps.Key) string {
	name, ok := evdev.KEY[int(key)]
	if !ok || name == "" {
		return keymaps.DefaultLabel(key)
	}
	return strings.TrimPrefix(name, "KEY_")
}
