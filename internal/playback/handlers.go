package playback

import (
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/player"
)

// handleEvent applies an engine event in receipt order.
func (s *Store) handleEvent(ev player.Event) {
	s.mu.Lock()
	if s.closed || ev.Epoch != s.epoch || s.queue.Current() == nil {
		s.mu.Unlock()
		return
	}
	before := s.snapshotLocked()

	switch ev.Kind {
	case player.TimeUpdated:
		s.currentTime = max(ev.Position, 0)
	case player.DurationKnown:
		if ev.Duration > 0 {
			s.reported = ev.Duration
		}
	case player.CanPlay:
		if s.state == StateLoading && !s.wantPlaying {
			s.state = StatePaused
		}
	case player.PlayedStateChanged:
		s.handlePlayedLocked(ev.Playing)
	case player.Ended:
		s.handleEndedLocked()
	}

	after := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(before, after)
}

func (s *Store) handlePlayedLocked(playing bool) {
	s.isPlaying = playing
	if playing {
		s.wantPlaying = true
		s.state = StatePlaying
		return
	}
	// A pause notification while loading does not end the load: the
	// source may still start once it is ready.
	if s.state == StatePlaying {
		s.wantPlaying = false
		s.state = StatePaused
	}
}

// handleEndedLocked advances to the next track if there is one.
// Otherwise the track stays current, paused at its end, so it can be
// replayed.
func (s *Store) handleEndedLocked() {
	if _, ok := s.queue.NextIndex(); ok {
		s.log.Debug("track ended, advancing")
		s.advanceLocked(1)
		return
	}
	s.isPlaying = false
	s.wantPlaying = false
	s.state = StatePaused
	if d := s.durationLocked(); d > 0 {
		s.currentTime = d
	}
	s.log.Debug("queue finished", zap.Int("index", s.queue.CurrentIndex()))
}
