package tui

import "fmt"

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// String returns the canonical name of the key, as carried by
// KeyPressMessage. Printable characters are KeyRune; their name comes
// from the event's rune, not from here.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		if k >= KeyF1 && k <= KeyF12 {
			return fmt.Sprintf("F%d", k-KeyF1+1)
		}
		return "Unknown"
	}
}

// keyName resolves the canonical key string for a driver event:
// the printable character for rune events, the key's name otherwise,
// with "Unknown" as the fallback for anything unmapped.
func keyName(e KeyEvent) string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	if e.Key == KeyNone {
		return "Unknown"
	}
	return e.Key.String()
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Names returns the active modifier names in canonical order:
// ctrl, alt, shift. Returns nil when no modifiers are set.
func (m Modifier) Names() []string {
	if m == ModNone {
		return nil
	}
	var names []string
	if m.Has(ModCtrl) {
		names = append(names, "ctrl")
	}
	if m.Has(ModAlt) {
		names = append(names, "alt")
	}
	if m.Has(ModShift) {
		names = append(names, "shift")
	}
	return names
}
