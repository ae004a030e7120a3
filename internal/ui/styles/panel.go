package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// BarStyle is the bordered style for full-width bars such as the player.
func BarStyle() lipgloss.Style {
	return PanelStyle(false)
}

// Brand renders the application name with the theme gradient.
func Brand(name string) string {
	return AccentGradient().Text(name, true)
}
