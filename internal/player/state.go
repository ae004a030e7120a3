package player

// State is the lifecycle of a BeepResource's current source.
//
//	┌──────────┐  Load   ┌─────────┐  decoded  ┌────────┐  Play  ┌─────────┐
//	│ Unloaded │────────▶│ Loading │──────────▶│ Paused │◀──────▶│ Playing │
//	└──────────┘         └─────────┘           └────────┘  Pause └─────────┘
//	                          │                     ▲                │
//	                   fetch/ │                     └────── end ─────┘
//	                   decode ▼
//	                     ┌────────┐
//	                     │ Failed │
//	                     └────────┘
//
// Load from any state goes back to Loading (or Unloaded for an empty
// source). Failed is internal only: no event is emitted for it.
type State int

const (
	Unloaded State = iota
	Loading
	Paused
	Playing
	Failed
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Loading:
		return "Loading"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsReady returns true if the source is decoded and can be played.
func (s State) IsReady() bool {
	return s == Paused || s == Playing
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if Play would start output immediately.
func (s State) CanPlay() bool {
	return s == Paused
}
