package songlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/icons"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/playerbar"
	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

const (
	durationWidth = 6
	ageWidth      = 14
	minStyleWidth = 20
)

// View renders the catalog panel.
func (m Model) View() string {
	if m.list.Width() == 0 || m.list.Height() == 0 {
		return ""
	}
	innerWidth := m.list.Width() - ui.BorderHeight
	listHeight := m.list.ListHeight(ui.PanelOverhead)

	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderSongs(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(width int) string {
	if m.filtering {
		return render.Pad(m.input.View(), width)
	}
	left := fmt.Sprintf("Songs (%d)", len(m.all))
	if f := m.Filter(); f != "" {
		left = fmt.Sprintf("Songs (%d/%d) /%s", m.list.Len(), len(m.all), f)
	}
	right := ""
	if m.stale {
		right = styles.T().S().Warning.Render("offline copy")
	}
	left = render.Truncate(left, max(width-lipgloss.Width(right)-1, 0))
	return render.Row(headerStyle().Render(left), right, width)
}

func (m Model) renderSongs(width, height int) string {
	songs := m.list.Items()
	if len(songs) == 0 {
		msg := "No songs yet"
		if m.Filter() != "" {
			msg = "No matching songs"
		}
		lines := []string{styles.T().S().Subtle.Render(render.TruncateAndPad(msg, width))}
		for len(lines) < height {
			lines = append(lines, render.EmptyLine(width))
		}
		return strings.Join(lines[:max(height, 0)], "\n")
	}

	start, end := m.list.VisibleRange()
	lines := make([]string, 0, height)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderSong(songs[idx], idx, width))
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// renderSong lays out name, style, duration and age. Style and age are
// dropped first when the panel is narrow.
func (m Model) renderSong(s catalog.Song, idx, width int) string {
	name := s.Title
	if name == "" {
		name = "Untitled"
	}
	name = icons.FormatSong(name)

	dur := ""
	if t := s.Track(); t.Duration > 0 {
		dur = playerbar.FormatTime(t.Duration)
	}
	age := ""
	if !s.CreatedAt.IsZero() {
		age = humanize.RelTime(s.CreatedAt, m.now(), "ago", "from now")
	}

	fixed := durationWidth
	showAge := width >= 60 && age != ""
	if showAge {
		fixed += ageWidth
	}
	rest := max(width-fixed, 0)
	styleWidth := 0
	if rest >= 2*minStyleWidth {
		styleWidth = rest / 3
	}
	nameWidth := rest - styleWidth

	var b strings.Builder
	b.WriteString(render.TruncateAndPad(name, nameWidth))
	if styleWidth > 0 {
		b.WriteString(render.TruncateAndPad(s.Subtitle(), styleWidth))
	}
	b.WriteString(render.PadLeft(dur, durationWidth))
	if showAge {
		b.WriteString(render.PadLeft(render.Truncate(age, ageWidth-1), ageWidth))
	}

	return m.lineStyle(s, idx).Render(b.String())
}

func (m Model) lineStyle(s catalog.Song, idx int) lipgloss.Style {
	isCursor := idx == m.list.SelectedIndex() && m.IsFocused()
	isCurrent := s.ID != "" && s.ID == m.current
	switch {
	case isCursor && isCurrent:
		return styles.T().S().Cursor.Inherit(styles.T().S().Playing)
	case isCursor:
		return styles.T().S().Cursor
	case isCurrent:
		return styles.T().S().Playing
	default:
		return styles.T().S().Base
	}
}

func headerStyle() lipgloss.Style {
	return styles.T().S().Header
}
