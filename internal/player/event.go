package player

import "time"

// EventKind identifies a resource-native notification.
type EventKind int

const (
	TimeUpdated EventKind = iota
	DurationKnown
	CanPlay
	Ended
	PlayedStateChanged
)

// String returns the event name for debugging.
func (k EventKind) String() string {
	switch k {
	case TimeUpdated:
		return "TimeUpdated"
	case DurationKnown:
		return "DurationKnown"
	case CanPlay:
		return "CanPlay"
	case Ended:
		return "Ended"
	case PlayedStateChanged:
		return "PlayedStateChanged"
	default:
		return "Unknown"
	}
}

// Event is emitted by a Resource.
// Epoch identifies the Load that produced it; the Engine drops events
// whose epoch is not the current one.
type Event struct {
	Kind     EventKind
	Epoch    uint64
	Position time.Duration // TimeUpdated
	Duration time.Duration // DurationKnown
	Playing  bool          // PlayedStateChanged
}
