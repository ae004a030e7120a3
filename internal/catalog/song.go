// Package catalog loads the songs a user can play: from the songs API,
// from a local TOML file or from a directory of audio files.
package catalog

import (
	"context"
	"math"
	"time"

	"github.com/boostlegends/Prodverse/internal/playlist"
	"github.com/boostlegends/Prodverse/internal/state"
)

// generatorArtist is credited on songs produced by the generation service.
const generatorArtist = "Suno AI"

// Song is a catalog entry as stored by the songs service.
type Song struct {
	ID        string    `json:"id" koanf:"id"`
	Title     string    `json:"title" koanf:"title"`
	AudioURL  string    `json:"audio_url" koanf:"audio_url"`
	StreamURL string    `json:"stream_url" koanf:"stream_url"`
	ImageURL  string    `json:"image_url" koanf:"image_url"`
	Duration  float64   `json:"duration" koanf:"duration"` // seconds, 0 if unknown
	Style     string    `json:"style" koanf:"style"`
	Prompt    string    `json:"prompt" koanf:"prompt"`
	TaskID    string    `json:"task_id" koanf:"task_id"`
	SunoID    string    `json:"suno_id" koanf:"suno_id"`
	CreatedAt time.Time `json:"created_at" koanf:"created_at"`

	// Artist is set for local files; service songs use generatorArtist.
	Artist string `json:"-" koanf:"artist"`
}

// Source supplies the catalog.
type Source interface {
	Songs(ctx context.Context) ([]Song, error)
}

// Refresher fetches fresh media URLs for a song whose URLs expired.
type Refresher interface {
	Refresh(ctx context.Context, s Song) (Song, error)
}

// Track converts s into a playable track. Durations are whole seconds.
func (s Song) Track() playlist.Track {
	artist := s.Artist
	if artist == "" && s.TaskID != "" {
		artist = generatorArtist
	}
	return playlist.Track{
		ID:        s.ID,
		Title:     s.Title,
		AudioURL:  s.AudioURL,
		StreamURL: s.StreamURL,
		ImageURL:  s.ImageURL,
		Artist:    artist,
		Duration:  secondsToDuration(s.Duration),
	}
}

// Subtitle is the secondary line shown under the title in lists.
func (s Song) Subtitle() string {
	if s.Style != "" {
		return s.Style
	}
	return "AI Generated"
}

func secondsToDuration(sec float64) time.Duration {
	if sec <= 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0
	}
	return time.Duration(math.Round(sec)) * time.Second
}

// Tracks converts songs to tracks, keeping order.
func Tracks(songs []Song) []playlist.Track {
	out := make([]playlist.Track, len(songs))
	for i, s := range songs {
		out[i] = s.Track()
	}
	return out
}

// ToCached converts songs for the offline cache.
func ToCached(songs []Song) []state.CachedSong {
	out := make([]state.CachedSong, len(songs))
	for i, s := range songs {
		out[i] = state.CachedSong{
			ID:        s.ID,
			Title:     s.Title,
			AudioURL:  s.AudioURL,
			StreamURL: s.StreamURL,
			ImageURL:  s.ImageURL,
			Duration:  secondsToDuration(s.Duration),
			Style:     s.Style,
			Prompt:    s.Prompt,
			TaskID:    s.TaskID,
			SunoID:    s.SunoID,
			CreatedAt: s.CreatedAt,
		}
	}
	return out
}

// FromCached converts cached rows back into songs.
func FromCached(cached []state.CachedSong) []Song {
	out := make([]Song, len(cached))
	for i, c := range cached {
		out[i] = Song{
			ID:        c.ID,
			Title:     c.Title,
			AudioURL:  c.AudioURL,
			StreamURL: c.StreamURL,
			ImageURL:  c.ImageURL,
			Duration:  c.Duration.Seconds(),
			Style:     c.Style,
			Prompt:    c.Prompt,
			TaskID:    c.TaskID,
			SunoID:    c.SunoID,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}
