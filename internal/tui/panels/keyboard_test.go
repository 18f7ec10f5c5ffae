package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftkeys/driftkeys/internal/flip"
	"github.com/driftkeys/driftkeys/internal/keyboard"
)

func testStyles() KeycapStyles {
	plain := lipgloss.NewStyle()
	return KeycapStyles{Letter: plain, Special: plain, Pressed: plain, Preview: plain}
}

func cellWidth(k *keyboard.Key) int {
	w := k.Width / 10
	if min := len([]rune(k.Label)) + 2; w < min {
		w = min
	}
	return w
}

func testProps(rows [][]*keyboard.Key) KeyboardProps {
	return KeyboardProps{
		Rows:      rows,
		CellWidth: cellWidth,
		KeyHeight: 3,
		PressedID: -1,
		Styles:    testStyles(),
	}
}

func TestRenderKeyboardLabels(t *testing.T) {
	rows := [][]*keyboard.Key{
		{
			{ID: 0, Label: "q", Width: 50},
			{ID: 1, Label: "w", Width: 50},
		},
		{
			{ID: 2, Label: "⌫", Width: 80, Action: keyboard.ActionBackspace},
		},
	}
	out := RenderKeyboard(testProps(rows), 20, PreviewMargin+6)

	for _, want := range []string{"q", "w", "⌫", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Keycaps start below the preview margin.
	lines := strings.Split(out, "\n")
	for y := 0; y < PreviewMargin; y++ {
		if strings.TrimSpace(lines[y]) != "" {
			t.Errorf("margin row %d not blank: %q", y, lines[y])
		}
	}
	if !strings.Contains(lines[PreviewMargin], "╭") {
		t.Errorf("row %d missing keycap top: %q", PreviewMargin, lines[PreviewMargin])
	}
}

func TestRenderKeyboardOffsets(t *testing.T) {
	rows := [][]*keyboard.Key{{{ID: 0, Label: "q", Width: 50}}}
	props := testProps(rows)
	props.Offsets = map[int]flip.Offset{0: {DX: 4.4, DY: 0}}
	out := RenderKeyboard(props, 20, PreviewMargin+3)

	lines := strings.Split(out, "\n")
	top := lines[PreviewMargin]
	// DX 4.4 rounds to 4 cells.
	if idx := strings.IndexRune(top, '╭'); idx != 4 {
		t.Errorf("keycap left edge at %d, want 4: %q", idx, top)
	}
}

func TestRenderKeyboardPreviewBubble(t *testing.T) {
	rows := [][]*keyboard.Key{{{ID: 0, Label: "q", Width: 50}}}
	props := testProps(rows)
	props.PressedID = 0
	props.ShowPreview = true
	out := RenderKeyboard(props, 20, PreviewMargin+3)

	lines := strings.Split(out, "\n")
	// Bubble occupies the margin rows with the label inside.
	if !strings.Contains(lines[0], "╭") {
		t.Errorf("bubble top missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "q") {
		t.Errorf("bubble label missing: %q", lines[1])
	}
}

func TestRenderKeyboardNoPreviewWhenDisabled(t *testing.T) {
	rows := [][]*keyboard.Key{{{ID: 0, Label: "q", Width: 50}}}
	props := testProps(rows)
	props.PressedID = 0
	props.ShowPreview = false
	out := RenderKeyboard(props, 20, PreviewMargin+3)

	lines := strings.Split(out, "\n")
	for y := 0; y < PreviewMargin; y++ {
		if strings.TrimSpace(lines[y]) != "" {
			t.Errorf("preview drawn while disabled at row %d: %q", y, lines[y])
		}
	}
}
