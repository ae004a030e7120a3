package playback

import (
	"math"

	"go.uber.org/zap"
)

// VolumeStore persists the volume preference across sessions.
type VolumeStore interface {
	// LoadVolume returns the stored level, or ok=false if none is stored.
	LoadVolume() (level float64, ok bool, err error)
	SaveVolume(level float64) error
}

// clampVolume limits level to 0.0-1.0. NaN becomes 0.
func clampVolume(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		return 0
	}
	return min(level, 1)
}

func (s *Store) loadVolume() (float64, bool) {
	if s.volumes == nil {
		return 0, false
	}
	level, ok, err := s.volumes.LoadVolume()
	if err != nil {
		s.log.Warn("load volume failed", zap.Error(err))
		return 0, false
	}
	if !ok {
		return 0, false
	}
	return clampVolume(level), true
}

func (s *Store) saveVolume(level float64) {
	if s.volumes == nil {
		return
	}
	if err := s.volumes.SaveVolume(level); err != nil {
		s.log.Warn("save volume failed", zap.Float64("volume", level), zap.Error(err))
	}
}

func (s *Store) applyVolumeLocked() {
	s.engine.SetOutputVolume(s.volume, s.muted)
}

// SetVolume sets the level, clamped to 0.0-1.0. A level of exactly 0
// mutes and any other level unmutes. The level is persisted.
func (s *Store) SetVolume(level float64) {
	level = clampVolume(level)
	persist := false
	s.mutate(func() {
		s.volume = level
		s.muted = level == 0
		s.applyVolumeLocked()
		persist = true
	})
	if persist {
		s.saveVolume(level)
	}
}

// ToggleMute flips the mute flag. The stored level is unchanged.
func (s *Store) ToggleMute() {
	s.mutate(func() {
		s.muted = !s.muted
		s.applyVolumeLocked()
	})
}

// Volume returns the stored level and the mute flag.
func (s *Store) Volume() (level float64, muted bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume, s.muted
}
