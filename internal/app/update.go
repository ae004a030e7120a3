package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/errmsg"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case PlaybackMessage:
		return m.handlePlaybackMessage(msg)

	case CatalogMessage:
		return m.handleCatalogMessage(msg)

	case StderrMsg:
		m.errMsg = "audio: " + msg.Line
		m.resize()
		return m, m.WatchStderr()

	case TickMsg:
		return m, TickCmd()

	case clearStatusMsg:
		if msg.version == m.statusVersion {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m Model) handlePlaybackMessage(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case PlaybackClosedMsg:
		m.sub = nil
		return m, nil
	case TrackChangedMsg:
		if msg.Current != nil {
			cmds = append(cmds, AnnounceCmd(m.nowPlaying, *msg.Current))
		} else {
			cmds = append(cmds, DismissCmd(m.nowPlaying))
		}
	}

	m.syncPlayback()
	cmds = append(cmds, m.WatchPlayback())
	return m, tea.Batch(cmds...)
}

func (m Model) handleCatalogMessage(msg CatalogMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.log.Warn("catalog load failed", zap.Error(msg.Err))
			m.errMsg = errmsg.Format(errmsg.OpCatalogLoad, msg.Err)
			m.resize()
			return m, nil
		}
		m.stale = msg.Result.Stale
		m.errMsg = ""
		if msg.Result.Stale {
			m.errMsg = errmsg.Format(errmsg.OpCatalogLoad, msg.Result.Err)
		}
		m.songs.SetSongs(msg.Result.Songs, msg.Result.Stale)
		if m.restoreID != "" {
			m.songs.Select(m.restoreID)
			m.restoreID = ""
		}
		m.resize()
		return m, nil

	case CatalogFileChangedMsg:
		m.loading = true
		return m, tea.Batch(LoadCatalogCmd(m.source, m.cache, m.log), m.WatchCatalogFile())

	case SongRefreshedMsg:
		if msg.Err != nil {
			m.log.Warn("refresh failed", zap.String("song", msg.Song.ID), zap.Error(msg.Err))
			return m, m.setStatus(errmsg.FormatWith(errmsg.OpCatalogRefresh, msg.Song.Title, msg.Err))
		}
		songs := catalog.Replace(m.songs.Songs(), msg.Song)
		m.songs.SetSongs(songs, m.stale)
		if m.cache != nil {
			if err := m.cache.SaveSongs(catalog.ToCached(songs)); err != nil {
				m.log.Warn("cache refreshed catalog", zap.Error(err))
			}
		}
		if cur := m.store.CurrentTrack(); cur != nil && cur.ID == msg.Song.ID {
			t := msg.Song.Track()
			m.store.Play(&t)
		}
		return m, m.setStatus(fmt.Sprintf("Refreshed %q", msg.Song.Title))
	}
	return m, nil
}

// setStatus shows a transient note in the header.
func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusVersion++
	return clearStatusCmd(m.statusVersion)
}

// syncPlayback copies the latest store snapshot into the panels.
func (m *Model) syncPlayback() {
	m.snap = m.store.Snapshot()
	m.queue.SetQueue(m.snap.Queue, m.snap.QueueIndex)
	if t := m.snap.CurrentTrack; t != nil {
		m.songs.SetCurrent(t.ID)
	} else {
		m.songs.SetCurrent("")
	}
	m.resize()
}
