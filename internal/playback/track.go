package playback

import "github.com/boostlegends/Prodverse/internal/playlist"

// Track is a queue entry. Snapshots and events carry copies.
type Track = playlist.Track
