package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftkeys/driftkeys/internal/keyboard"
)

// cursor is the block cursor appended after the typed text.
const cursor = "█"

// OutputPanel shows the text assembled from key presses in a scrollable
// viewport that follows the end of the text.
type OutputPanel struct {
	vp     viewport.Model
	text   []rune
	width  int
	height int
}

// NewOutputPanel creates an empty output panel.
func NewOutputPanel(w, h int) OutputPanel {
	vp := viewport.New(w, h)
	p := OutputPanel{vp: vp, width: w, height: h}
	p.vp.SetContent(cursor)
	return p
}

// Apply performs one key action on the text: append the label, delete the
// last rune, or insert a newline/space.
func (p OutputPanel) Apply(action keyboard.Action, label string) OutputPanel {
	switch action {
	case keyboard.ActionAppend:
		p.text = append(p.text, []rune(label)...)
	case keyboard.ActionBackspace:
		if len(p.text) > 0 {
			p.text = p.text[:len(p.text)-1]
		}
	case keyboard.ActionEnter:
		p.text = append(p.text, '\n')
	case keyboard.ActionSpace:
		p.text = append(p.text, ' ')
	}
	p.vp.SetContent(p.wrapped() + cursor)
	p.vp.GotoBottom()
	return p
}

// Text returns the assembled output text.
func (p OutputPanel) Text() string {
	return string(p.text)
}

// wrapped hard-wraps the text at the panel width so long lines scroll
// vertically instead of being clipped.
func (p OutputPanel) wrapped() string {
	if p.width <= 0 {
		return string(p.text)
	}
	var b strings.Builder
	col := 0
	for _, r := range p.text {
		if r == '\n' {
			b.WriteRune(r)
			col = 0
			continue
		}
		if col >= p.width-1 {
			b.WriteRune('\n')
			col = 0
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// SetSize resizes the panel.
func (p OutputPanel) SetSize(w, h int) OutputPanel {
	p.width = w
	p.height = h
	p.vp.Width = w
	p.vp.Height = h
	p.vp.SetContent(p.wrapped() + cursor)
	p.vp.GotoBottom()
	return p
}

// Update handles scroll messages.
func (p OutputPanel) Update(msg tea.Msg) (OutputPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View renders the output panel.
func (p OutputPanel) View() string {
	return p.vp.View()
}
