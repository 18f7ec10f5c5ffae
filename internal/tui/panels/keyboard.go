// Package panels provides the panel components for the DriftKeys TUI.
package panels

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftkeys/driftkeys/internal/flip"
	"github.com/driftkeys/driftkeys/internal/keyboard"
	"github.com/driftkeys/driftkeys/internal/tui/components"
)

// PreviewMargin reserves rows above the top key row so the floating label
// bubble has somewhere to render for row-0 keys. Callers must size the
// keyboard canvas with this margin included.
const PreviewMargin = 3

// KeycapStyles bundles the concrete styles the keyboard panel renders with.
// Passed as plain lipgloss styles to keep panels independent of the parent
// tui package's Theme (circular import prevention).
type KeycapStyles struct {
	Letter  lipgloss.Style
	Special lipgloss.Style
	Pressed lipgloss.Style
	Preview lipgloss.Style
}

// KeyboardProps holds everything needed to draw the keyboard for one frame.
type KeyboardProps struct {
	Rows        [][]*keyboard.Key // visual rows, top to bottom
	CellWidth   func(*keyboard.Key) int
	KeyHeight   int
	Offsets     map[int]flip.Offset // FLIP frame offsets by key ID
	PressedID   int                 // -1 when no key is flashing
	ShowPreview bool
	Styles      KeycapStyles
}

// RenderKeyboard draws all keycaps (offset by the current animation frame)
// onto a canvas of the given dimensions. The pressed key and its preview
// bubble draw last so they stay on top of keys sliding beneath them.
func RenderKeyboard(props KeyboardProps, width, height int) string {
	canvas := components.NewCanvas(width, height)

	type placed struct {
		key  *keyboard.Key
		x, y int
	}
	var pressed *placed

	for r, row := range props.Rows {
		x := 0
		for _, k := range row {
			w := props.CellWidth(k)
			px, py := x, PreviewMargin+r*props.KeyHeight
			if o, ok := props.Offsets[k.ID]; ok {
				px += int(math.Round(o.DX))
				py += int(math.Round(o.DY))
			}
			if k.ID == props.PressedID {
				pressed = &placed{key: k, x: px, y: py}
			} else {
				drawKeycap(canvas, k, px, py, w, props.KeyHeight, keycapStyleFor(k, props.Styles))
			}
			x += w + 1
		}
	}

	if pressed != nil {
		w := props.CellWidth(pressed.key)
		drawKeycap(canvas, pressed.key, pressed.x, pressed.y, w, props.KeyHeight, &props.Styles.Pressed)
		if props.ShowPreview {
			drawPreview(canvas, pressed.key, pressed.x, pressed.y, &props.Styles.Preview)
		}
	}

	return canvas.Render()
}

func keycapStyleFor(k *keyboard.Key, styles KeycapStyles) *lipgloss.Style {
	if k.Action != keyboard.ActionAppend {
		return &styles.Special
	}
	return &styles.Letter
}

// drawKeycap renders one bordered keycap with a centered label.
func drawKeycap(canvas *components.Canvas, k *keyboard.Key, x, y, w, h int, style *lipgloss.Style) {
	canvas.DrawBox(x, y, w, h, style)
	label := []rune(k.Label)
	lx := x + (w-len(label))/2
	canvas.DrawText(lx, y+h/2, k.Label, style)
}

// drawPreview renders the floating label bubble just above a pressed key.
func drawPreview(canvas *components.Canvas, k *keyboard.Key, x, y int, style *lipgloss.Style) {
	w := len([]rune(k.Label)) + 2
	canvas.DrawBox(x, y-PreviewMargin, w, PreviewMargin, style)
	canvas.DrawText(x+1, y-PreviewMargin+1, k.Label, style)
}
