// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

// ErrNoSource is returned by Resource.Play when nothing is loaded.
var ErrNoSource = errors.New("no source loaded")

// Resource is the opaque media-playback capability: one playable
// element that fetches, decodes and outputs a source URL.
//
// Implementations must deliver events through the sink in the order they
// happen and never synchronously from inside one of their own methods.
type Resource interface {
	// Load assigns a new source tagged with epoch. It does not start playback.
	// An empty src unloads the current source.
	Load(src string, epoch uint64)
	// Play requests playback. Failures may also surface later as the
	// resource simply never reporting PlayedStateChanged(true).
	Play() error
	Pause()
	Seek(position time.Duration)
	// SetVolume sets the output level (0.0 to 1.0).
	SetVolume(level float64)
	SetSink(sink func(Event))
	Close() error
}

// Interface defines the engine contract for dependency injection and testing.
type Interface interface {
	Load(src string) uint64
	Play()
	Pause()
	SetPosition(position time.Duration)
	SetOutputVolume(level float64, muted bool)
	Observe(fn func(Event)) (unregister func())
	Epoch() uint64
	Close() error
}

// Verify Engine implements Interface at compile time.
var _ Interface = (*Engine)(nil)
