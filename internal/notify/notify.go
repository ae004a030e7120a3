// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/playlist"
)

// Urgency represents notification priority levels as defined by freedesktop notifications.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a track notification stays visible.
const nowPlayingTimeout = 5 * time.Second

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying announces track changes. Each announcement replaces the
// previous one so only a single notification is visible.
type NowPlaying struct {
	notifier Notifier
	covers   *CoverCache
	log      *zap.Logger

	mu     sync.Mutex
	lastID uint32
}

// NewNowPlaying creates an announcer. covers may be nil to skip artwork.
func NewNowPlaying(n Notifier, covers *CoverCache, log *zap.Logger) *NowPlaying {
	if log == nil {
		log = zap.NewNop()
	}
	return &NowPlaying{notifier: n, covers: covers, log: log.Named("notify")}
}

// Announce shows a notification for t. Failures are logged, not returned.
func (p *NowPlaying) Announce(ctx context.Context, t playlist.Track) {
	n := TrackNotification(t)
	if p.covers != nil && t.ImageURL != "" {
		n.Icon = p.covers.Path(ctx, t.ImageURL)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	n.ReplacesID = p.lastID
	id, err := p.notifier.Notify(n)
	if err != nil {
		p.log.Debug("notification failed", zap.String("track", t.ID), zap.Error(err))
		return
	}
	p.lastID = id
}

// Dismiss closes the last notification, if any.
func (p *NowPlaying) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastID == 0 {
		return
	}
	_ = p.notifier.Close(p.lastID)
	p.lastID = 0
}

// TrackNotification builds the notification shown when t starts.
func TrackNotification(t playlist.Track) Notification {
	title := t.Title
	if title == "" {
		title = "Untitled"
	}
	return Notification{
		Title:   title,
		Body:    t.DisplayArtist(),
		Icon:    "audio-x-generic",
		Timeout: int32(nowPlayingTimeout / time.Millisecond),
		Urgency: UrgencyLow,
	}
}
