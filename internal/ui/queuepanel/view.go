package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/icons"
	"github.com/boostlegends/Prodverse/internal/playlist"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.list.Width() == 0 || m.list.Height() == 0 {
		return ""
	}

	innerWidth := m.list.Width() - ui.BorderHeight
	listHeight := m.list.ListHeight(ui.PanelOverhead)

	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderTrackList(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	text := fmt.Sprintf("Queue (%d/%d)", m.current+1, m.list.Len())
	return headerStyle().Render(render.TruncateAndPad(text, innerWidth))
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	tracks := m.list.Items()
	start, end := m.list.VisibleRange()

	lines := make([]string, 0, listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders "▶ title  artist" in two columns.
func (m Model) renderTrackLine(track playlist.Track, idx, width int) string {
	prefix := "  "
	if idx == m.current {
		prefix = playingSymbol + " "
	}

	contentWidth := width - 2
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := track.Title
	if title == "" {
		title = "Untitled"
	}
	line := prefix +
		render.TruncateAndPad(icons.FormatQueued(title), titleWidth) +
		render.TruncateAndPad(track.DisplayArtist(), artistWidth)

	return m.lineStyle(idx).Render(line)
}

func (m Model) lineStyle(idx int) lipgloss.Style {
	isCursor := idx == m.list.SelectedIndex() && m.IsFocused()
	isPlaying := idx == m.current
	isPlayed := m.current >= 0 && idx < m.current

	switch {
	case isCursor && isPlaying:
		return cursorStyle().Inherit(playingStyle())
	case isCursor && isPlayed:
		return cursorStyle().Inherit(dimmedStyle())
	case isCursor:
		return cursorStyle()
	case isPlaying:
		return playingStyle()
	case isPlayed:
		return dimmedStyle()
	default:
		return trackStyle()
	}
}
