package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
type HeaderProps struct {
	Layout  string // active layout name
	Policy  string // reflow policy name
	Presses int
	Demo    bool // scripted typist active
	Elapsed time.Duration
	Clock   time.Time
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// RenderHeader renders the header bar.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	parts := []string{
		"⌨ DriftKeys",
		fmt.Sprintf("layout: %s", props.Layout),
		fmt.Sprintf("reflow: %s", props.Policy),
		fmt.Sprintf("presses: %d", props.Presses),
	}
	if props.Demo {
		parts = append(parts, "demo")
	}
	if props.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("elapsed: %s", FormatElapsed(props.Elapsed)))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).Render(content)
}
