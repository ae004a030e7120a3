package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/notify"
	"github.com/boostlegends/Prodverse/internal/playlist"
)

const (
	tickInterval   = time.Second
	statusLifetime = 3 * time.Second
	catalogTimeout = 30 * time.Second
	refreshTimeout = 15 * time.Second
	announceBudget = 10 * time.Second
)

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func clearStatusCmd(version int) tea.Cmd {
	return tea.Tick(statusLifetime, func(_ time.Time) tea.Msg {
		return clearStatusMsg{version: version}
	})
}

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. onResult receives false when the channel
// is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchPlayback waits for the next store event.
func (m Model) WatchPlayback() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.VolumeChanged:
			return VolumeChangedMsg(e)
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}

// WatchStderr waits for a line of native stderr output.
func (m Model) WatchStderr() tea.Cmd {
	return waitForChannel(m.stderr, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// WatchCatalogFile waits for the catalog file to change.
func (m Model) WatchCatalogFile() tea.Cmd {
	return waitForChannel(m.changed, func(_ struct{}, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return CatalogFileChangedMsg{}
	})
}

// LoadCatalogCmd fetches the catalog, falling back to the cache.
func LoadCatalogCmd(src catalog.Source, cache catalog.Cache, log *zap.Logger) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()
		res, err := catalog.Load(ctx, src, cache, log)
		return CatalogLoadedMsg{Result: res, Err: err}
	}
}

// RefreshSongCmd asks the service for fresh media URLs for s.
func RefreshSongCmd(r catalog.Refresher, s catalog.Song) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		updated, err := r.Refresh(ctx, s)
		if err != nil {
			return SongRefreshedMsg{Song: s, Err: err}
		}
		return SongRefreshedMsg{Song: updated}
	}
}

// AnnounceCmd shows a now-playing notification for t.
func AnnounceCmd(np *notify.NowPlaying, t playlist.Track) tea.Cmd {
	if np == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), announceBudget)
		defer cancel()
		np.Announce(ctx, t)
		return nil
	}
}

// DismissCmd closes the now-playing notification.
func DismissCmd(np *notify.NowPlaying) tea.Cmd {
	if np == nil {
		return nil
	}
	return func() tea.Msg {
		np.Dismiss()
		return nil
	}
}
