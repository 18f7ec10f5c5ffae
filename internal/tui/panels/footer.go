package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	LastPressed string // label of the most recently pressed key
	Follow      bool   // trace panel follow mode
	Animating   bool
}

// RenderFooter renders the keybinding hints bar. Left side: last pressed
// key. Right side: hints.
func RenderFooter(props FooterProps, width int) string {
	last := props.LastPressed
	if last == "" {
		last = "—"
	}
	left := fmt.Sprintf("last key: %s", last)
	if props.Animating {
		left += "  ~"
	}

	follow := "on"
	if !props.Follow {
		follow = "off"
	}
	right := fmt.Sprintf("type to press  tab:layout  ctrl+f:follow(%s)  esc:quit", follow)

	gap := width - len(left) - len(right)
	if gap < 2 {
		gap = 2
	}
	return footerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
