// internal/playback/store.go
package playback

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/player"
	"github.com/boostlegends/Prodverse/internal/playlist"
)

// DefaultVolume is used when no volume has been persisted.
const DefaultVolume = 0.7

type changeObserver struct {
	id int
	fn func(Snapshot)
}

// Store is the playback coordinator: the single source of truth merging
// engine events and queue transitions into one observable state.
//
// Commands apply their effect to local state before the engine confirms
// it. The requested play state (wantPlaying) and the confirmed one
// (isPlaying) are tracked separately; only engine events set isPlaying.
// Every load is tagged with the engine epoch and events from any other
// epoch are ignored.
type Store struct {
	mu sync.RWMutex

	engine  player.Interface
	queue   *playlist.PlayingQueue
	log     *zap.Logger
	volumes VolumeStore
	now     func() time.Time

	epoch       uint64
	state       State
	wantPlaying bool
	isPlaying   bool
	requestedAt time.Time

	currentTime time.Duration
	reported    time.Duration // duration reported by the engine, 0 if unknown

	volume        float64
	muted         bool
	defaultVolume float64

	unobserve   func()
	initialized bool
	closed      bool

	subs   []*Subscription
	subsMu sync.RWMutex

	observers  []changeObserver
	nextObsID  int
	observerMu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithVolumeStore sets where the volume preference is read and written.
func WithVolumeStore(vs VolumeStore) Option {
	return func(s *Store) { s.volumes = vs }
}

// WithDefaultVolume sets the level used when nothing is persisted.
func WithDefaultVolume(level float64) Option {
	return func(s *Store) { s.defaultVolume = clampVolume(level) }
}

// WithClock overrides the time source used for stall detection.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store driving engine and queue. Call Init before use.
func New(engine player.Interface, queue *playlist.PlayingQueue, opts ...Option) *Store {
	s := &Store{
		engine:        engine,
		queue:         queue,
		log:           zap.NewNop(),
		now:           time.Now,
		defaultVolume: DefaultVolume,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("playback")
	s.volume = s.defaultVolume
	return s
}

// Init restores the persisted volume, starts observing the engine and
// applies the volume to it. Calling Init more than once is a no-op.
func (s *Store) Init() {
	level, ok := s.loadVolume()

	s.mu.Lock()
	if s.initialized || s.closed {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	if ok {
		s.volume = level
		s.muted = level == 0
	}
	s.unobserve = s.engine.Observe(s.handleEvent)
	s.applyVolumeLocked()
	volume := s.volume
	s.mu.Unlock()

	s.log.Debug("initialized", zap.Float64("volume", volume), zap.Bool("restored", ok))
}

// Close stops observing the engine, pauses output and signals all
// subscribers. The engine itself is owned by the caller.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	unobserve := s.unobserve
	s.unobserve = nil
	if s.queue.Current() != nil {
		s.engine.Pause()
	}
	s.mu.Unlock()

	if unobserve != nil {
		unobserve()
	}

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	s.observerMu.Lock()
	s.observers = nil
	s.observerMu.Unlock()
	return nil
}

// Subscribe creates a new event subscription. After Close the returned
// subscription is already done.
func (s *Store) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// OnChange registers fn to be called with the new snapshot after every
// change. fn runs on the goroutine that caused the change, outside the
// store lock. The returned function unregisters fn.
func (s *Store) OnChange(fn func(Snapshot)) func() {
	s.observerMu.Lock()
	defer s.observerMu.Unlock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, changeObserver{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.observerMu.Lock()
			defer s.observerMu.Unlock()
			for i, o := range s.observers {
				if o.id == id {
					s.observers = append(s.observers[:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Stalled reports whether playback was requested at least threshold ago
// and the engine has still not confirmed it. Failed sources show up
// this way since they never start playing.
func (s *Store) Stalled(threshold time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.wantPlaying || s.isPlaying || s.queue.Current() == nil {
		return false
	}
	return s.now().Sub(s.requestedAt) >= threshold
}

// mutate runs fn under the write lock and publishes the resulting change.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	before := s.snapshotLocked()
	fn()
	after := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(before, after)
}

// publish fans out the differences between two snapshots.
func (s *Store) publish(before, after Snapshot) {
	changed := false

	s.subsMu.RLock()
	subs := s.subs
	if before.State != after.State {
		changed = true
		for _, sub := range subs {
			sub.sendState(StateChange{Previous: before.State, Current: after.State})
		}
	}
	if trackChanged(before, after) {
		changed = true
		e := TrackChange{
			Previous:      before.CurrentTrack,
			Current:       after.CurrentTrack,
			PreviousIndex: before.QueueIndex,
			Index:         after.QueueIndex,
		}
		for _, sub := range subs {
			sub.sendTrack(e)
		}
	}
	if before.CurrentTime != after.CurrentTime || before.Duration != after.Duration {
		changed = true
		for _, sub := range subs {
			sub.sendPosition(PositionChange{Position: after.CurrentTime, Duration: after.Duration})
		}
	}
	if queueChanged(before, after) {
		changed = true
		for _, sub := range subs {
			sub.sendQueue(QueueChange{Tracks: after.Queue, Index: after.QueueIndex})
		}
	}
	if before.Volume != after.Volume || before.IsMuted != after.IsMuted {
		changed = true
		for _, sub := range subs {
			sub.sendVolume(VolumeChange{Volume: after.Volume, Muted: after.IsMuted})
		}
	}
	if before.IsPlaying != after.IsPlaying || before.PlayRequested != after.PlayRequested ||
		before.ReportedDuration != after.ReportedDuration {
		changed = true
	}
	s.subsMu.RUnlock()

	if !changed {
		return
	}

	s.observerMu.Lock()
	observers := make([]changeObserver, len(s.observers))
	copy(observers, s.observers)
	s.observerMu.Unlock()

	for _, o := range observers {
		o.fn(after)
	}
}
