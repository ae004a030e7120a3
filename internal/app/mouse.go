package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/scrub"
	"github.com/boostlegends/Prodverse/internal/ui/headerbar"
)

// handleMouseMsg routes the progress bar gestures to the scrub handler and
// everything else to the panel under the pointer.
//
// A press on the bar starts a drag. While the drag is held, motion and the
// release are delivered through the handler's listeners wherever the
// pointer is, so letting go outside the bar still commits the seek.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := float64(msg.X)
	listeners := m.scrub.Listeners()

	switch msg.Action {
	case tea.MouseActionMotion:
		if listeners.Count() > 0 {
			listeners.Dispatch(scrub.MouseMove, x)
			return m, nil
		}
		if m.overProgressBar(msg.X, msg.Y) {
			m.scrub.Hover(x)
		} else {
			m.scrub.Leave()
		}
		return m, nil

	case tea.MouseActionRelease:
		if listeners.Count() > 0 {
			listeners.Dispatch(scrub.MouseUp, x)
		}
		return m, nil

	case tea.MouseActionPress:
	}

	if m.overPlayerBar(msg.Y) {
		return m.handlePlayerBarPress(msg)
	}

	if m.queueVisible {
		if t := m.queue.HandleMouse(msg); t != nil {
			m.setFocus(headerbar.FocusQueue)
			m.store.Play(t)
			return m, nil
		}
	}
	before := m.songs.SelectedID()
	req := m.songs.HandleMouse(msg)
	m.saveSelection(before)
	return m, m.handleSongRequest(req)
}

func (m Model) handlePlayerBarPress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := float64(msg.X)
	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonLeft:
		if m.overProgressBar(msg.X, msg.Y) {
			m.scrub.PointerDown(x)
		}
	case tea.MouseButtonMiddle:
		if m.overProgressBar(msg.X, msg.Y) {
			m.scrub.Click(x)
		}
	case tea.MouseButtonWheelUp:
		m.nudgeVolume(volumeStep)
	case tea.MouseButtonWheelDown:
		m.nudgeVolume(-volumeStep)
	}
	return m, nil
}
