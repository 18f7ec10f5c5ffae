package panels

import (
	"strings"
	"testing"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

func TestOutputPanelApply(t *testing.T) {
	p := NewOutputPanel(20, 3)

	tests := []struct {
		action keyboard.Action
		label  string
		want   string
	}{
		{keyboard.ActionAppend, "h", "h"},
		{keyboard.ActionAppend, "i", "hi"},
		{keyboard.ActionSpace, "space", "hi "},
		{keyboard.ActionAppend, "x", "hi x"},
		{keyboard.ActionBackspace, "⌫", "hi "},
		{keyboard.ActionEnter, "⏎", "hi \n"},
	}
	for _, tt := range tests {
		p = p.Apply(tt.action, tt.label)
		if got := p.Text(); got != tt.want {
			t.Errorf("after %v: Text() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestOutputPanelBackspaceOnEmpty(t *testing.T) {
	p := NewOutputPanel(20, 3)
	p = p.Apply(keyboard.ActionBackspace, "⌫")
	if p.Text() != "" {
		t.Errorf("Text() = %q, want empty", p.Text())
	}
}

func TestOutputPanelWraps(t *testing.T) {
	p := NewOutputPanel(5, 3)
	for i := 0; i < 10; i++ {
		p = p.Apply(keyboard.ActionAppend, "a")
	}
	// Wrapped rendering splits the 10 a's across lines; Text stays unwrapped.
	if p.Text() != strings.Repeat("a", 10) {
		t.Errorf("Text() = %q", p.Text())
	}
	if !strings.Contains(p.View(), "aaaa") {
		t.Errorf("View() = %q", p.View())
	}
	if strings.Contains(p.View(), strings.Repeat("a", 10)) {
		t.Error("long line not wrapped in view")
	}
}

func TestOutputPanelCursor(t *testing.T) {
	p := NewOutputPanel(20, 3)
	if !strings.Contains(p.View(), "█") {
		t.Error("empty panel missing cursor")
	}
	p = p.Apply(keyboard.ActionAppend, "a")
	if !strings.Contains(p.View(), "a█") {
		t.Errorf("cursor not after text: %q", p.View())
	}
}
