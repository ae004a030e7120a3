// Package headerbar renders the single-line header: brand, focus tabs and
// catalog status.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const brand = "Prodverse"

// Focus names the panel that has the keyboard.
type Focus string

const (
	FocusSongs Focus = "songs"
	FocusQueue Focus = "queue"
)

// State is what the header shows.
type State struct {
	Focus        Focus
	QueueVisible bool
	Loading      bool
	Stale        bool
	Status       string // short right-aligned note, e.g. a refresh result
}

type tab struct {
	key   string
	name  string
	focus Focus
}

var tabs = []tab{
	{"tab", "Songs", FocusSongs},
	{"p", "Queue", FocusQueue},
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
}

func inactiveStyle() lipgloss.Style {
	return styles.T().S().Muted
}

// Render returns the header bar string for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.focus == FocusQueue && !s.QueueVisible {
			continue
		}
		style := inactiveStyle()
		if t.focus == s.Focus {
			style = activeStyle()
		}
		parts = append(parts, styles.T().S().Subtle.Render(t.key)+" "+style.Render(t.name))
	}
	left := styles.Brand(brand) + "  " + strings.Join(parts, styles.T().S().Subtle.Render(" │ "))

	right := status(s)
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = ""
	}
	if lipgloss.Width(left) > width {
		return styles.Brand(brand)
	}
	return render.Row(left, right, width)
}

func status(s State) string {
	switch {
	case s.Status != "":
		return styles.T().S().Muted.Render(s.Status)
	case s.Loading:
		return styles.T().S().Muted.Render("loading songs...")
	case s.Stale:
		return styles.T().S().Warning.Render("offline")
	default:
		return styles.T().S().Subtle.Render("? help")
	}
}
