// internal/playback/commands.go
package playback

import (
	"time"

	"go.uber.org/zap"
)

// Play starts t, enqueueing it unless a track with the same ID is
// already queued; the queue is never reordered. A queued entry is
// replaced by t so refreshed URLs take effect. Playing the current track
// again resumes it unless its source changed.
//
// With a nil t, Play resumes the current track, if any.
func (s *Store) Play(t *Track) {
	s.mutate(func() {
		if t == nil {
			s.resumeLocked()
			return
		}
		if cur := s.queue.Current(); cur != nil && cur.SameAs(*t) && cur.Source() == t.Source() {
			s.queue.Replace(*t)
			s.resumeLocked()
			return
		}
		idx := s.queue.ResolveOrEnqueue(*t)
		s.queue.Replace(*t)
		s.loadLocked(idx)
	})
}

// Pause pauses the current track. No-op when nothing is current.
func (s *Store) Pause() {
	s.mutate(s.pauseLocked)
}

// TogglePlay pauses if the engine confirmed playback, otherwise resumes.
// A start that never took is retried rather than cancelled.
func (s *Store) TogglePlay() {
	s.mutate(func() {
		if s.isPlaying {
			s.pauseLocked()
			return
		}
		s.resumeLocked()
	})
}

// Seek moves to position, clamped to [0, duration]. CurrentTime is
// updated immediately. No-op while the duration is unknown.
func (s *Store) Seek(position time.Duration) {
	s.mutate(func() {
		if s.queue.Current() == nil {
			return
		}
		duration := s.durationLocked()
		if duration <= 0 {
			return
		}
		position = min(max(position, 0), duration)
		s.currentTime = position
		s.engine.SetPosition(position)
	})
}

// AddToQueue appends t without touching the current track or playback.
// A track whose ID is already queued is not added again.
func (s *Store) AddToQueue(t Track) {
	s.mutate(func() {
		if s.queue.Contains(t) {
			return
		}
		s.queue.Append(t)
	})
}

// PlayNext loads and plays the following track. No-op at the last one.
func (s *Store) PlayNext() {
	s.mutate(func() { s.advanceLocked(1) })
}

// PlayPrevious loads and plays the preceding track. No-op at the first one.
func (s *Store) PlayPrevious() {
	s.mutate(func() { s.advanceLocked(-1) })
}

// ClearQueue stops playback, empties the queue and clears the current
// track. The engine source is unloaded so pending events are discarded.
func (s *Store) ClearQueue() {
	s.mutate(func() {
		s.engine.Pause()
		s.epoch = s.engine.Load("")
		s.queue.Clear()
		s.state = StateIdle
		s.wantPlaying = false
		s.isPlaying = false
		s.currentTime = 0
		s.reported = 0
	})
}

func (s *Store) advanceLocked(step int) {
	var (
		idx int
		ok  bool
	)
	if step > 0 {
		idx, ok = s.queue.NextIndex()
	} else {
		idx, ok = s.queue.PreviousIndex()
	}
	if !ok {
		return
	}
	s.loadLocked(idx)
}

// loadLocked makes the entry at idx current, loads it and requests play.
func (s *Store) loadLocked(idx int) {
	t := s.queue.JumpTo(idx)
	if t == nil {
		return
	}
	s.epoch = s.engine.Load(t.Source())
	s.state = StateLoading
	s.isPlaying = false
	s.currentTime = 0
	s.reported = 0
	s.wantPlaying = false
	s.requestLocked()

	s.log.Debug("load",
		zap.String("track", t.ID),
		zap.Int("index", idx),
		zap.Uint64("epoch", s.epoch))
}

func (s *Store) resumeLocked() {
	if s.queue.Current() == nil {
		return
	}
	s.requestLocked()
}

func (s *Store) requestLocked() {
	if !s.wantPlaying {
		s.requestedAt = s.now()
	}
	s.wantPlaying = true
	s.engine.Play()
}

func (s *Store) pauseLocked() {
	if s.queue.Current() == nil {
		return
	}
	s.wantPlaying = false
	s.engine.Pause()
	if s.state == StateLoading {
		// Nothing will confirm a pause of a source that never started.
		s.state = StatePaused
	}
}
