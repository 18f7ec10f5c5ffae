package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftkeys/driftkeys/internal/tui/panels"
)

func (m Model) View() string {
	if m.layout.TooSmall {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("terminal too small for this layout"))
	}

	var sections []string

	header := panels.RenderHeader(panels.HeaderProps{
		Layout:  m.tabs.Title(),
		Policy:  m.policy.String(),
		Presses: m.pressSeq,
		Demo:    m.script != nil && !m.script.Done(),
		Elapsed: m.now.Sub(m.startedAt),
		Clock:   m.now,
	}, m.width, m.theme.AccentHeaderStyle())
	sections = append(sections, header)

	sections = append(sections, m.tabs.View())

	sections = append(sections, m.viewKeyboard())
	sections = append(sections, m.viewOutput())
	if m.cfg.TUI.ShowTrace && m.layout.Trace.Height > 0 {
		sections = append(sections, m.viewTrace())
	}

	footer := panels.RenderFooter(panels.FooterProps{
		LastPressed: m.lastPressed,
		Follow:      m.traceView.Following(),
		Animating:   m.surface.Animating(m.animNow),
	}, m.width)
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewKeyboard() string {
	w, h := innerDims(m.layout.Keyboard)
	content := panels.RenderKeyboard(panels.KeyboardProps{
		Rows:        m.surface.Rows(),
		CellWidth:   m.surface.CellWidth,
		KeyHeight:   keyHeight,
		Offsets:     m.surface.Offsets(m.animNow),
		PressedID:   m.pressedID,
		ShowPreview: m.cfg.TUI.ShowPreview,
		Styles:      m.theme.KeycapStyles(),
	}, w, h)
	return m.theme.PanelBorderStyle(true).Width(w).Height(h).Render(content)
}

func (m Model) viewOutput() string {
	w, h := innerDims(m.layout.Output)
	return m.theme.PanelBorderStyle(false).Width(w).Height(h).Render(m.output.View())
}

func (m Model) viewTrace() string {
	w, h := innerDims(m.layout.Trace)
	label := traceLabelStyle.Render("trace")
	body := m.traceView.View()
	return m.theme.PanelBorderStyle(false).Width(w).Height(h).
		Render(strings.Join([]string{label, body}, "\n"))
}
