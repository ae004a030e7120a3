//go:build linux

package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/playback"
)

const busName = "prodverse"

// Adapter exposes a playback store as an MPRIS media player over D-Bus.
type Adapter struct {
	server    *server.Server
	events    *events.EventHandler
	log       *zap.Logger
	unobserve func()

	mu   sync.Mutex
	last playback.Snapshot
}

// New creates and starts a new MPRIS adapter.
func New(store *playback.Store, log *zap.Logger) (*Adapter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{log: log.Named("mpris")}

	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{store: store})
	a.events = events.NewEventHandler(a.server)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.Debug("mpris server stopped", zap.Error(err))
		}
	}()

	a.last = store.Snapshot()
	a.unobserve = store.OnChange(func(snap playback.Snapshot) {
		a.mu.Lock()
		before := a.last
		a.last = snap
		a.mu.Unlock()
		a.signal(before, snap)
	})
	return a, nil
}

// signal emits PropertiesChanged for whatever differs between snapshots.
func (a *Adapter) signal(before, after playback.Snapshot) {
	var errs []error
	if before.State != after.State || before.PlayRequested != after.PlayRequested {
		errs = append(errs, a.events.Player.OnPlayPause())
	}
	if trackID(before.CurrentTrack) != trackID(after.CurrentTrack) || before.Duration != after.Duration {
		errs = append(errs, a.events.Player.OnTitle())
	}
	if before.Volume != after.Volume || before.IsMuted != after.IsMuted {
		errs = append(errs, a.events.Player.OnVolume())
	}
	if seeked(before, after) {
		errs = append(errs, a.events.Player.OnSeek(types.Microseconds(after.CurrentTime.Microseconds())))
	}
	if err := errors.Join(errs...); err != nil {
		a.log.Debug("mpris signal failed", zap.Error(err))
	}
}

// seeked reports a position jump that is not explained by playback.
func seeked(before, after playback.Snapshot) bool {
	if trackID(before.CurrentTrack) != trackID(after.CurrentTrack) {
		return false
	}
	delta := after.CurrentTime - before.CurrentTime
	return delta < 0 || delta > 2*time.Second
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	if a.unobserve != nil {
		a.unobserve()
	}
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Prodverse", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https", "http", "file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	store *playback.Store
}

func (p *playerAdapter) Next() error {
	p.store.PlayNext()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.store.PlayPrevious()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.store.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.store.TogglePlay()
	return nil
}

// Stop pauses; there is no separate stopped state.
func (p *playerAdapter) Stop() error {
	p.store.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.store.Play(nil)
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.store.CurrentTime() + time.Duration(offset)*time.Microsecond
	p.store.Seek(pos)
	return nil
}

func (p *playerAdapter) SetPosition(id string, position types.Microseconds) error {
	// Stale requests for a previous track are ignored per MPRIS.
	if dbus.ObjectPath(id) != trackObjectPath(p.store.CurrentTrack()) {
		return nil
	}
	p.store.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.store.Snapshot()), nil
}

func playbackStatus(snap playback.Snapshot) types.PlaybackStatus {
	switch snap.State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StateLoading:
		if snap.PlayRequested {
			return types.PlaybackStatusPlaying
		}
		return types.PlaybackStatusPaused
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateIdle:
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.store.Snapshot()), nil
}

func metadata(snap playback.Snapshot) types.Metadata {
	track := snap.CurrentTrack
	if track == nil {
		return types.Metadata{}
	}
	return types.Metadata{
		TrackId: trackObjectPath(track),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   track.Title,
		Artist:  []string{track.DisplayArtist()},
		ArtUrl:  artURL(track.ImageURL),
	}
}

func (p *playerAdapter) Volume() (float64, error) {
	level, muted := p.store.Volume()
	if muted {
		return 0, nil
	}
	return level, nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.store.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.store.CurrentTime().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.store.Snapshot().HasNext, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.store.Snapshot().HasPrevious, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.store.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.store.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.store.Duration() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func trackID(t *playback.Track) string {
	if t == nil {
		return ""
	}
	return t.ID
}

func trackObjectPath(t *playback.Track) dbus.ObjectPath {
	if t == nil {
		return "/org/mpris/MediaPlayer2/TrackList/NoTrack"
	}
	h := fnv.New64a()
	h.Write([]byte(t.ID))
	return dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64()))
}
