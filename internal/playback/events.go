package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different track is loaded, or when the
// current track is cleared (Current is nil).
//
// Reloading the same track with a refreshed source does not emit.
// The app handles track-related side effects (notifications, MPRIS
// metadata) in response to this event.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents or pointer change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// PositionChange is emitted when the current time or the effective
// duration changes.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// VolumeChange is emitted when the volume level or mute flag changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}
