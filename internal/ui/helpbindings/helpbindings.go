// Package helpbindings renders a scrollable overlay listing key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{"global", "playback", "catalog", "queue"}

var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"catalog":  "Songs",
	"queue":    "Queue Panel",
}

// chrome is the border, title and footer rows around the binding lines.
const chrome = ui.BorderHeight + 4

// Model holds the state for the help overlay.
type Model struct {
	ui.Base
	keys         *keymap.Resolver
	lines        []string
	visible      bool
	scrollOffset int
}

// New creates a help overlay that labels keys with r.
func New(r *keymap.Resolver) Model {
	m := Model{keys: r}
	m.lines = m.buildLines()
	return m
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	m.visible = !m.visible
	m.scrollOffset = 0
}

// HandleKey scrolls or closes the overlay.
func (m *Model) HandleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "?", "esc", "q":
		m.visible = false
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

// View renders the overlay centered in the component area.
func (m Model) View() string {
	if !m.visible || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := 0
	for _, l := range m.lines {
		width = max(width, lipgloss.Width(l))
	}

	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.visibleHeight(), len(m.lines))
	shown := make([]string, 0, end-start)
	for _, l := range m.lines[start:end] {
		shown = append(shown, render.Pad(l, width))
	}

	var b strings.Builder
	b.WriteString(styles.T().S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(shown, "\n"))
	b.WriteString("\n\n")
	b.WriteString(styles.T().S().Subtle.Render(m.footer()))

	box := styles.PanelStyle(true).Padding(0, 1).Render(b.String())
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) footer() string {
	if m.maxScroll() > 0 {
		return "j/k scroll · ? close"
	}
	return "? close"
}

func (m Model) buildLines() []string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)

	labels := make(map[keymap.Action]string)
	keyWidth := 0
	for _, b := range keymap.Bindings {
		l := m.keys.HelpLabel(b.Action)
		labels[b.Action] = l
		keyWidth = max(keyWidth, lipgloss.Width(l))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			headerStyle.Render(categoryLabels[ctx]),
			styles.T().S().Subtle.Render(render.Separator(keyWidth+20)))
		for _, b := range bindings {
			lines = append(lines,
				keyStyle.Render(render.Pad(labels[b.Action], keyWidth))+"  "+
					styles.T().S().Base.Render(b.Description))
		}
	}
	return lines
}
