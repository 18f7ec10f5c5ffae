package tui

import (
	"testing"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

func TestIsGlobalKey(t *testing.T) {
	for _, key := range GlobalKeyBindings {
		if !IsGlobalKey(key) {
			t.Errorf("IsGlobalKey(%q) = false", key)
		}
	}
	// Letters are never global: they belong to the virtual keyboard.
	for _, key := range []string{"q", "f", "x", " "} {
		if IsGlobalKey(key) {
			t.Errorf("IsGlobalKey(%q) = true", key)
		}
	}
}

func TestVirtualKeyFor(t *testing.T) {
	full, err := keyboard.LayoutByName("full")
	if err != nil {
		t.Fatal(err)
	}
	e := keyboard.NewEngine(full, keyboard.NopSurface{}, keyboard.PolicyWidthBudget)

	tests := []struct {
		key        string
		wantLabel  string
		wantAction keyboard.Action
	}{
		{"m", "m", keyboard.ActionAppend},
		{"backspace", "⌫", keyboard.ActionBackspace},
		{"enter", "⏎", keyboard.ActionEnter},
		{" ", "space", keyboard.ActionSpace},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k := VirtualKeyFor(e, tt.key)
			if k == nil {
				t.Fatalf("VirtualKeyFor(%q) = nil", tt.key)
			}
			if k.Label != tt.wantLabel || k.Action != tt.wantAction {
				t.Errorf("got %q/%v, want %q/%v", k.Label, k.Action, tt.wantLabel, tt.wantAction)
			}
		})
	}

	for _, key := range []string{"1", "up", "pgdown", "ctrl+a", "Z"} {
		if k := VirtualKeyFor(e, key); k != nil {
			t.Errorf("VirtualKeyFor(%q) = %v, want nil", key, k)
		}
	}
}
