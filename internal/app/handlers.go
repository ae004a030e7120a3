package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/ui/confirm"
	"github.com/boostlegends/Prodverse/internal/ui/headerbar"
	"github.com/boostlegends/Prodverse/internal/ui/songlist"
)

// keyHandler attempts to handle an action. handled is false when the
// action belongs to another handler.
type keyHandler func(a keymap.Action) (handled bool, cmd tea.Cmd)

// chain runs handlers in order until one handles the action.
func chain(a keymap.Action, handlers ...keyHandler) tea.Cmd {
	for _, h := range handlers {
		if ok, cmd := h(a); ok {
			return cmd
		}
	}
	return nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.Visible() {
		m.help.HandleKey(msg)
		return m, nil
	}
	if m.confirm.Active() {
		if res, done := m.confirm.HandleKey(msg); done && res.Confirmed {
			m.applyConfirmed(res)
		}
		return m, nil
	}
	if m.songs.Filtering() {
		before := m.songs.SelectedID()
		cmd := m.songs.UpdateFilter(msg)
		m.saveSelection(before)
		return m, cmd
	}
	if msg.Type == tea.KeyEsc && m.scrub.Dragging() {
		m.scrub.Cancel()
		return m, nil
	}

	a := m.keys.Resolve(msg.String())
	if a == "" {
		return m, nil
	}
	cmd := chain(a, m.handleGlobalKeys, m.handlePlaybackKeys, m.handlePanelKeys)
	return m, cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action) (bool, tea.Cmd) {
	switch a { //nolint:exhaustive // only handling global actions
	case keymap.ActionQuit:
		return true, tea.Quit
	case keymap.ActionHelp:
		m.help.Toggle()
		return true, nil
	case keymap.ActionToggleQueue:
		m.queueVisible = !m.queueVisible
		if !m.queueVisible && m.focus == headerbar.FocusQueue {
			m.setFocus(headerbar.FocusSongs)
		}
		m.resize()
		return true, nil
	case keymap.ActionSwitchFocus:
		if m.focus == headerbar.FocusSongs && m.queueVisible {
			m.setFocus(headerbar.FocusQueue)
		} else {
			m.setFocus(headerbar.FocusSongs)
		}
		return true, nil
	case keymap.ActionReload:
		m.loading = true
		return true, LoadCatalogCmd(m.source, m.cache, m.log)
	}
	return false, nil
}

func (m *Model) handlePlaybackKeys(a keymap.Action) (bool, tea.Cmd) {
	switch a { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlayPause:
		m.store.TogglePlay()
	case keymap.ActionNextTrack:
		m.store.PlayNext()
	case keymap.ActionPrevTrack:
		m.store.PlayPrevious()
	case keymap.ActionSeekForward:
		m.store.Seek(m.store.CurrentTime() + seekStep)
	case keymap.ActionSeekBack:
		m.store.Seek(max(m.store.CurrentTime()-seekStep, 0))
	case keymap.ActionSeekForwardLong:
		m.store.Seek(m.store.CurrentTime() + seekStepLong)
	case keymap.ActionSeekBackLong:
		m.store.Seek(max(m.store.CurrentTime()-seekStepLong, 0))
	case keymap.ActionVolumeUp:
		m.nudgeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.nudgeVolume(-volumeStep)
	case keymap.ActionToggleMute:
		m.store.ToggleMute()
	default:
		return false, nil
	}
	return true, nil
}

// nudgeVolume changes the level relative to the current one. A muted
// player unmutes from its kept level.
func (m *Model) nudgeVolume(delta float64) {
	level, _ := m.store.Volume()
	m.store.SetVolume(level + delta)
}

func (m *Model) handlePanelKeys(a keymap.Action) (bool, tea.Cmd) {
	if m.focus == headerbar.FocusQueue {
		if a == keymap.ActionClear {
			m.askClearQueue()
			return true, nil
		}
		if t := m.queue.HandleAction(a); t != nil {
			m.store.Play(t)
		}
		return true, nil
	}

	if a == keymap.ActionSearch {
		return true, m.songs.StartFilter()
	}
	before := m.songs.SelectedID()
	req := m.songs.HandleAction(a)
	m.saveSelection(before)
	return true, m.handleSongRequest(req)
}

func (m *Model) askClearQueue() {
	n := m.queue.Len()
	if n == 0 {
		return
	}
	noun := "tracks"
	if n == 1 {
		noun = "track"
	}
	m.confirm.Show("Clear queue?",
		fmt.Sprintf("%d %s will be removed and playback stops.", n, noun),
		confirmClearQueue)
}

func (m *Model) applyConfirmed(res confirm.Result) {
	if res.Context == confirmClearQueue {
		m.store.ClearQueue()
	}
}

func (m *Model) handleSongRequest(req songlist.Request) tea.Cmd {
	switch req.Intent {
	case songlist.IntentPlay:
		t := req.Song.Track()
		m.store.Play(&t)
	case songlist.IntentAdd:
		m.store.AddToQueue(req.Song.Track())
		return m.setStatus(fmt.Sprintf("Queued %q", req.Song.Title))
	case songlist.IntentRefresh:
		if m.refresher == nil {
			return m.setStatus("This catalog has no refresh")
		}
		return tea.Batch(
			m.setStatus(fmt.Sprintf("Refreshing %q...", req.Song.Title)),
			RefreshSongCmd(m.refresher, req.Song),
		)
	case songlist.IntentNone:
	}
	return nil
}

func (m *Model) setFocus(f headerbar.Focus) {
	m.focus = f
	m.songs.SetFocused(f == headerbar.FocusSongs)
	m.queue.SetFocused(f == headerbar.FocusQueue)
}

// saveSelection persists the catalog cursor when it moved off before.
func (m *Model) saveSelection(before string) {
	if m.state == nil {
		return
	}
	if id := m.songs.SelectedID(); id != "" && id != before {
		m.state.SaveSelection(id)
	}
}
