package playback

import (
	"slices"
	"time"
)

// Snapshot is the externally observable playback state.
type Snapshot struct {
	CurrentTrack *Track
	State        State

	// IsPlaying is confirmed by the engine; PlayRequested is what the
	// last command asked for.
	IsPlaying     bool
	PlayRequested bool

	CurrentTime time.Duration
	// Duration is the engine-reported duration when known, otherwise the
	// track's declared duration.
	Duration         time.Duration
	ReportedDuration time.Duration

	Volume  float64
	IsMuted bool

	Queue       []Track
	QueueIndex  int
	HasNext     bool
	HasPrevious bool

	epoch uint64
}

// Progress returns CurrentTime as a fraction of Duration (0 to 1).
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	p := float64(s.CurrentTime) / float64(s.Duration)
	return min(max(p, 0), 1)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// State returns the current playback state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentTime returns the current playback position.
func (s *Store) CurrentTime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTime
}

// Duration returns the effective duration of the current track.
func (s *Store) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.durationLocked()
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *Store) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrackLocked()
}

func (s *Store) currentTrackLocked() *Track {
	t := s.queue.Current()
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// durationLocked is evaluated on every read: the engine may report a
// duration at any time after the track's declared one was in use.
func (s *Store) durationLocked() time.Duration {
	if s.reported > 0 {
		return s.reported
	}
	if t := s.queue.Current(); t != nil && t.Duration > 0 {
		return t.Duration
	}
	return 0
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentTrack:     s.currentTrackLocked(),
		State:            s.state,
		IsPlaying:        s.isPlaying,
		PlayRequested:    s.wantPlaying,
		CurrentTime:      s.currentTime,
		Duration:         s.durationLocked(),
		ReportedDuration: s.reported,
		Volume:           s.volume,
		IsMuted:          s.muted,
		Queue:            s.queue.Tracks(),
		QueueIndex:       s.queue.CurrentIndex(),
		HasNext:          s.queue.HasNext(),
		HasPrevious:      s.queue.HasPrevious(),
		epoch:            s.epoch,
	}
}

// trackChanged reports a load of a different track, or the current
// track being cleared.
func trackChanged(before, after Snapshot) bool {
	if before.epoch == after.epoch {
		return false
	}
	switch {
	case before.CurrentTrack == nil && after.CurrentTrack == nil:
		return false
	case before.CurrentTrack == nil || after.CurrentTrack == nil:
		return true
	default:
		return before.QueueIndex != after.QueueIndex || !before.CurrentTrack.SameAs(*after.CurrentTrack)
	}
}

func queueChanged(before, after Snapshot) bool {
	return before.QueueIndex != after.QueueIndex || !slices.Equal(before.Queue, after.Queue)
}
