package tui

import "github.com/driftkeys/driftkeys/internal/keyboard"

// GlobalKeyBindings lists the physical keys handled by the root model before
// virtual-key resolution. Plain letters can never be global bindings: they
// belong to the virtual keyboard (q quits nothing, it types a q).
var GlobalKeyBindings = []string{"tab", "ctrl+f", "esc", "ctrl+c"}

// IsGlobalKey reports whether key is a global keybinding.
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// VirtualKeyFor maps a physical key (bubbletea KeyMsg string) onto one of
// the engine's virtual keys, or nil when the layout has no matching key.
func VirtualKeyFor(e *keyboard.Engine, key string) *keyboard.Key {
	switch key {
	case "backspace":
		return e.KeyByAction(keyboard.ActionBackspace)
	case "enter":
		return e.KeyByAction(keyboard.ActionEnter)
	case " ":
		return e.KeyByAction(keyboard.ActionSpace)
	}
	if len([]rune(key)) == 1 {
		return e.KeyByLabel(key)
	}
	return nil
}
