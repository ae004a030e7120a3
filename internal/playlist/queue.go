package playlist

// PlayingQueue wraps a Playlist with the current-track pointer.
// Entries are never removed or reordered; insertion order is playback order.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing selected
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the selected track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the selected track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// ResolveOrEnqueue returns the index of the track with the same ID,
// leaving it where it is. Unknown tracks are appended and their new
// index is returned. The pointer is not moved.
func (q *PlayingQueue) ResolveOrEnqueue(t Track) int {
	if i := q.playlist.Index(t.ID); i >= 0 {
		return i
	}
	q.playlist.Add(t)
	return q.playlist.Len() - 1
}

// Append adds a track to the end without touching the pointer.
func (q *PlayingQueue) Append(t Track) {
	q.playlist.Add(t)
}

// Contains reports whether a track with the same ID is queued.
func (q *PlayingQueue) Contains(t Track) bool {
	return q.playlist.Index(t.ID) >= 0
}

// IndexOf returns the index of the track with the given ID, or -1.
func (q *PlayingQueue) IndexOf(id string) int {
	return q.playlist.Index(id)
}

// NextIndex returns the index after the current one.
// Returns false at the last entry or when nothing is selected.
func (q *PlayingQueue) NextIndex() (int, bool) {
	if !q.HasNext() {
		return 0, false
	}
	return q.currentIndex + 1, true
}

// PreviousIndex returns the index before the current one.
// Returns false at the first entry or when nothing is selected.
func (q *PlayingQueue) PreviousIndex() (int, bool) {
	if !q.HasPrevious() {
		return 0, false
	}
	return q.currentIndex - 1, true
}

// HasNext returns true if there's a track after the current one.
func (q *PlayingQueue) HasNext() bool {
	return q.currentIndex >= 0 && q.currentIndex < q.playlist.Len()-1
}

// HasPrevious returns true if there's a track before the current one.
func (q *PlayingQueue) HasPrevious() bool {
	return q.currentIndex > 0 && q.currentIndex < q.playlist.Len()
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Replace swaps the entry holding t.ID for t, keeping its position.
// Returns false if no entry has that ID.
func (q *PlayingQueue) Replace(t Track) bool {
	i := q.playlist.Index(t.ID)
	if i < 0 {
		return false
	}
	*q.playlist.Track(i) = t
	return true
}

// Clear removes all tracks and resets the pointer.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
