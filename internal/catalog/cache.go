package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/state"
)

// Cache persists the last catalog for offline startup.
// *state.Manager satisfies it.
type Cache interface {
	SaveSongs(songs []state.CachedSong) error
	ListSongs() ([]state.CachedSong, error)
}

// Result is a loaded catalog. Stale is set when the songs came from the
// cache because the source failed.
type Result struct {
	Songs []Song
	Stale bool
	Err   error // source error, set when Stale
}

// Load fetches songs from src and caches them. When src fails the cached
// catalog is returned instead, if there is one.
func Load(ctx context.Context, src Source, cache Cache, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	songs, err := src.Songs(ctx)
	if err == nil {
		if cache != nil {
			if cerr := cache.SaveSongs(ToCached(songs)); cerr != nil {
				log.Warn("cache catalog", zap.Error(cerr))
			}
		}
		return Result{Songs: songs}, nil
	}
	if cache == nil || errors.Is(err, context.Canceled) {
		return Result{}, err
	}

	cached, cerr := cache.ListSongs()
	if cerr != nil || len(cached) == 0 {
		return Result{}, err
	}
	log.Warn("using cached catalog", zap.Int("songs", len(cached)), zap.Error(err))
	return Result{Songs: FromCached(cached), Stale: true, Err: err}, nil
}

// Replace returns songs with the entry matching updated.ID replaced.
func Replace(songs []Song, updated Song) []Song {
	out := make([]Song, len(songs))
	copy(out, songs)
	if updated.ID == "" {
		return out
	}
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}
