package keymaps

// Key codes from linux/input-event-codes.h used by the hotkeys and the
// modifier tracking.
const (
	KeyEsc        Key = 1
	KeyQ          Key = 16
	KeyR          Key = 19
	KeyT          Key = 20
	KeyI          Key = 23
	KeyLeftCtrl   Key = 29
	KeyA          Key = 30
	KeyD          Key = 32
	KeyH          Key = 35
	KeyLeftShift  Key = 42
	KeyC          Key = 46
	KeyM          Key = 50
	KeyRightShift Key = 54
	KeyLeftAlt    Key = 56
	KeyRightCtrl  Key = 97
	KeyRightAlt   Key = 100
	KeyDelete     Key = 111
	KeyLeftMeta   Key = 125
	KeyRightMeta  Key = 126
)

// Modifier is a logical modifier, independent of the left/right key.
type Modifier int

const (
	ModCtrl Modifier = iota
	ModShift
	ModAlt
	ModMeta
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModMeta:
		return "Meta"
	}
	return "Unknown"
}

// ModifierOf returns the modifier a key belongs to.
func ModifierOf(k Key) (Modifier, bool) {
	switch k {
	case KeyLeftCtrl, KeyRightCtrl:
		return ModCtrl, true
	case KeyLeftShift, KeyRightShift:
		return ModShift, true
	case KeyLeftAlt, KeyRightAlt:
		return ModAlt, true
	case KeyLeftMeta, KeyRightMeta:
		return ModMeta, true
	}
	return 0, false
}

// IsModifier reports whether k is shift, ctrl, alt or meta on either side.
func IsModifier(k Key) bool {
	_, ok := ModifierOf(k)
	return ok
}
