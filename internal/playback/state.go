// internal/playback/state.go
package playback

// State represents the playback state.
//
//	Idle ──play(track)──▶ Loading ──confirmed playing──▶ Playing ◀──▶ Paused
//	                         ▲                              │
//	                         └── next/previous/ended ───────┘
//
// clearQueue returns to Idle from any state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// HasTrack returns true if a track is current in this state.
func (s State) HasTrack() bool {
	return s != StateIdle
}
