package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500")).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))

	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C8C8C8"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336"))

	buttonBase = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Center).
			Padding(0, 1).
			Margin(0, 1, 1, 0).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#4682B4"))

	buttonHover  = buttonBase.Background(lipgloss.Color("#64A0D2"))
	buttonActive = buttonBase.Background(lipgloss.Color("#32C864"))

	calloutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("#4682B4")).
			Padding(0, 2)

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// textBar renders a fixed-width horizontal bar. Display only, so the fill
// is clamped even though the numeric label is not.
func textBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
