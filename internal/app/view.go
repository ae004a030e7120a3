package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/ui/headerbar"
	"github.com/boostlegends/Prodverse/internal/ui/playerbar"
	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	parts := []string{
		headerbar.Render(headerbar.State{
			Focus:        m.focus,
			QueueVisible: m.queueVisible,
			Loading:      m.loading,
			Stale:        m.stale,
			Status:       m.status,
		}, m.Width),
	}

	switch {
	case m.help.Visible():
		parts = append(parts, m.help.View())
	case m.confirm.Active():
		parts = append(parts, m.confirm.View())
	default:
		parts = append(parts, m.renderPanels())
	}

	if bar := playerbar.Render(m.playerState(), m.Width); bar != "" {
		parts = append(parts, bar)
	}
	if m.errMsg != "" {
		line := render.TruncateAndPad(m.errMsg, m.Width)
		parts = append(parts, styles.T().S().Error.Render(line))
	}

	return strings.Join(parts, "\n")
}

func (m Model) renderPanels() string {
	songs := m.songs.View()
	if !m.queueVisible {
		return songs
	}
	queue := m.queue.View()
	if m.frame.Narrow {
		return lipgloss.JoinVertical(lipgloss.Left, songs, queue)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, songs, queue)
}
