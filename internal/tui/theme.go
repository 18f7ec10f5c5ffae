package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftkeys/driftkeys/internal/trace"
	"github.com/driftkeys/driftkeys/internal/tui/panels"
)

// Theme holds accent-color-derived styles. Non-accent styles are
// package-level in styles.go.
type Theme struct {
	accentStyle     lipgloss.Style // header bar
	pressedStyle    lipgloss.Style // keycap flash on press
	previewStyle    lipgloss.Style // floating label bubble
	borderFocused   lipgloss.Style
	borderUnfocused lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		pressedStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		previewStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(c).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// PanelBorderStyle returns the border style for a panel. The keyboard panel
// is the only input target, so it always gets the focused border.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// KeycapStyles bundles the concrete styles the keyboard panel needs, keeping
// panels free of a dependency on Theme.
func (t Theme) KeycapStyles() panels.KeycapStyles {
	return panels.KeycapStyles{
		Letter:  keycapStyle,
		Special: specialKeycapStyle,
		Pressed: t.pressedStyle,
		Preview: t.previewStyle,
	}
}

// RenderTraceLine renders one press event as a single trace-panel line.
func (t Theme) RenderTraceLine(ev trace.Event) string {
	ts := timestampStyle.Render(fmt.Sprintf("[%s]", ev.Time.Format("15:04:05")))
	label := traceLabelStyle.Render(fmt.Sprintf("%-5s", ev.Label))
	return fmt.Sprintf("%s  %s from (%d,%d)  %d moved", ts, label, ev.FromRow, ev.FromCol, ev.Moves)
}

// RenderTraceError renders an engine failure as a trace-panel line.
func (t Theme) RenderTraceError(err error) string {
	return errorStyle.Render("✗ " + err.Error())
}
