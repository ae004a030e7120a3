package queuepanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

const playingSymbol = "\u25B6" // ▶

func headerStyle() lipgloss.Style {
	return styles.T().S().Header
}

func trackStyle() lipgloss.Style {
	return styles.T().S().Base
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func dimmedStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
