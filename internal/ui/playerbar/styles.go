package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.BarStyle()
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func tooltipStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func stalledStyle() lipgloss.Style {
	return styles.T().S().Warning
}

func progressBarEmpty() lipgloss.Style {
	return styles.T().S().Subtle
}
