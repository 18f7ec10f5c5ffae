package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette shared across the TUI.
var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorBlue  = lipgloss.Color("#5B9BD5")
	colorRed   = lipgloss.Color("#FF6B6B")
)

// Styles that do not depend on the accent color. Accent-dependent styles
// (pressed keycaps, header, preview bubble) live on Theme.
var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	keycapStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	specialKeycapStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	traceLabelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)
)
