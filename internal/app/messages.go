package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/playback"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these
// interfaces, so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages from the playback store.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// CatalogMessage is implemented by messages about the song catalog.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// TickMsg is sent periodically to refresh time-based indicators.
type TickMsg time.Time

// StateChangedMsg wraps a playback state transition.
type StateChangedMsg playback.StateChange

func (StateChangedMsg) playbackMessage() {}

// TrackChangedMsg wraps a change of the current track.
type TrackChangedMsg playback.TrackChange

func (TrackChangedMsg) playbackMessage() {}

// PositionChangedMsg wraps a position or duration update.
type PositionChangedMsg playback.PositionChange

func (PositionChangedMsg) playbackMessage() {}

// QueueChangedMsg wraps a queue update.
type QueueChangedMsg playback.QueueChange

func (QueueChangedMsg) playbackMessage() {}

// VolumeChangedMsg wraps a volume or mute update.
type VolumeChangedMsg playback.VolumeChange

func (VolumeChangedMsg) playbackMessage() {}

// PlaybackClosedMsg is sent when the store shuts down.
type PlaybackClosedMsg struct{}

func (PlaybackClosedMsg) playbackMessage() {}

// CatalogLoadedMsg carries the result of a catalog load.
type CatalogLoadedMsg struct {
	Result catalog.Result
	Err    error
}

func (CatalogLoadedMsg) catalogMessage() {}

// CatalogFileChangedMsg is sent when the catalog file is rewritten.
type CatalogFileChangedMsg struct{}

func (CatalogFileChangedMsg) catalogMessage() {}

// SongRefreshedMsg carries a song with fresh media URLs.
type SongRefreshedMsg struct {
	Song catalog.Song
	Err  error
}

func (SongRefreshedMsg) catalogMessage() {}

// StderrMsg carries a line written to stderr by native audio code.
type StderrMsg struct {
	Line string
}

// clearStatusMsg expires a transient header status.
type clearStatusMsg struct {
	version int
}
