package playlist

import "time"

// defaultArtist is shown for tracks that carry no artist credit.
const defaultArtist = "AI Generated"

// Track represents a single playable item.
// Tracks are values: an update is a replacement keyed by ID.
type Track struct {
	ID        string // stable identity, unique within a queue
	Title     string
	AudioURL  string // final media location
	StreamURL string // low-latency source, may be available before AudioURL
	ImageURL  string
	Artist    string
	Duration  time.Duration // declared length, 0 if unknown
}

// Source returns the URL to hand to the player, preferring the stream.
func (t Track) Source() string {
	if t.StreamURL != "" {
		return t.StreamURL
	}
	return t.AudioURL
}

// DisplayArtist returns the artist credit for display.
func (t Track) DisplayArtist() string {
	if t.Artist == "" {
		return defaultArtist
	}
	return t.Artist
}

// SameAs reports whether both tracks are the same logical track.
// Tracks without an ID never match anything.
func (t Track) SameAs(other Track) bool {
	return t.ID != "" && t.ID == other.ID
}

// Playlist holds an ordered, append-only collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Index returns the position of the track with the given ID, or -1.
func (p *Playlist) Index(id string) int {
	if id == "" {
		return -1
	}
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
