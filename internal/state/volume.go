package state

import (
	"fmt"
	"strconv"
)

// volumeKey is the fixed key the volume preference is stored under.
const volumeKey = "player-volume"

// LoadVolume returns the saved volume level. ok is false when nothing
// has been saved yet.
func (m *Manager) LoadVolume() (float64, bool, error) {
	raw, ok, err := getPreference(m.db, volumeKey)
	if err != nil || !ok {
		return 0, false, err
	}
	level, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse stored volume %q: %w", raw, err)
	}
	return level, true, nil
}

// SaveVolume persists the volume level.
func (m *Manager) SaveVolume(level float64) error {
	return setPreference(m.db, volumeKey, strconv.FormatFloat(level, 'f', -1, 64))
}
