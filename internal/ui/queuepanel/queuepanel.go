// Package queuepanel renders the play queue and lets the user jump within it.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/playlist"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/list"
)

// Model represents the queue panel state.
type Model struct {
	list    list.Model[playlist.Track]
	current int
}

// New creates an empty queue panel.
func New() Model {
	return Model{
		list:    list.New[playlist.Track](ui.ScrollMargin),
		current: -1,
	}
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.list.SetFocused(focused)
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.list.IsFocused()
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SetOrigin records where the panel is drawn on screen.
func (m *Model) SetOrigin(x, y int) {
	m.list.SetOrigin(x, y)
}

// Width returns the panel width.
func (m Model) Width() int {
	return m.list.Width()
}

// SetQueue replaces the displayed queue. While the panel is not focused
// the cursor follows the current track.
func (m *Model) SetQueue(tracks []playlist.Track, current int) {
	changed := current != m.current
	m.list.SetItems(tracks)
	m.current = current
	if changed && !m.IsFocused() && current >= 0 {
		m.list.Select(current)
	}
}

// Len returns the number of queued tracks.
func (m Model) Len() int {
	return m.list.Len()
}

// HandleAction applies a key action. It returns the track to jump to when
// the user selects one.
func (m *Model) HandleAction(a keymap.Action) *playlist.Track {
	return m.jumpTarget(m.list.HandleAction(a))
}

// HandleMouse handles a mouse event over the panel. It returns the track
// to jump to when the user activates one.
func (m *Model) HandleMouse(msg tea.MouseMsg) *playlist.Track {
	return m.jumpTarget(m.list.HandleMouse(msg))
}

func (m Model) jumpTarget(res list.Result) *playlist.Track {
	if res.Action != list.ActionEnter {
		return nil
	}
	t, ok := m.list.Selected()
	if !ok {
		return nil
	}
	return &t
}
