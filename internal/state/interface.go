// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LoadVolume() (float64, bool, error)
	SaveVolume(level float64) error
	SaveSongs(songs []CachedSong) error
	ListSongs() ([]CachedSong, error)
	GetSelection() (string, error)
	SaveSelection(id string)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
