// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	volume    *float64
	songs     []CachedSong
	selection string
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) LoadVolume() (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.volume == nil {
		return 0, false, nil
	}
	return *m.volume, true, nil
}

func (m *Mock) SaveVolume(level float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = &level
	return nil
}

func (m *Mock) SaveSongs(songs []CachedSong) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.songs = append([]CachedSong(nil), songs...)
	return nil
}

func (m *Mock) ListSongs() ([]CachedSong, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CachedSong(nil), m.songs...), nil
}

func (m *Mock) GetSelection() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection, nil
}

func (m *Mock) SaveSelection(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = id
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
