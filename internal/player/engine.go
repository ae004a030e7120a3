package player

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type observer struct {
	id int
	fn func(Event)
}

// Engine owns the single media Resource of the process.
//
// Every Load starts a new epoch. Events tagged with an older epoch are
// dropped before they reach observers, so callbacks still in flight for a
// superseded source cannot touch state that belongs to the new one.
type Engine struct {
	mu  sync.Mutex
	res Resource
	log *zap.Logger

	epoch    uint64
	loaded   bool
	position time.Duration
	duration time.Duration

	observers []observer
	nextID    int
	closed    bool
}

// NewEngine creates an engine driving res.
func NewEngine(res Resource, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		res: res,
		log: log.Named("engine"),
	}
	res.SetSink(e.dispatch)
	return e
}

// Load assigns a new source and returns its epoch.
// Known position and duration are reset; playback is not started.
func (e *Engine) Load(src string) uint64 {
	e.mu.Lock()
	e.epoch++
	epoch := e.epoch
	e.loaded = src != ""
	e.position = 0
	e.duration = 0
	e.mu.Unlock()

	e.log.Debug("load", zap.String("src", src), zap.Uint64("epoch", epoch))
	e.res.Load(src, epoch)
	return epoch
}

// Play requests playback start. Failures are logged, never returned:
// a later user action usually retries.
func (e *Engine) Play() {
	e.mu.Lock()
	loaded, epoch := e.loaded, e.epoch
	e.mu.Unlock()
	if !loaded {
		return
	}
	if err := e.res.Play(); err != nil {
		e.log.Warn("playback start failed", zap.Uint64("epoch", epoch), zap.Error(err))
	}
}

// Pause requests playback stop.
func (e *Engine) Pause() {
	e.res.Pause()
}

// SetPosition seeks to an absolute position. Ignored with no source.
func (e *Engine) SetPosition(position time.Duration) {
	e.mu.Lock()
	loaded, duration := e.loaded, e.duration
	e.mu.Unlock()
	if !loaded {
		return
	}
	position = max(position, 0)
	if duration > 0 {
		position = min(position, duration)
	}
	e.res.Seek(position)
}

// SetOutputVolume applies level to the resource; output is 0 while muted.
func (e *Engine) SetOutputVolume(level float64, muted bool) {
	level = clampLevel(level)
	if muted {
		level = 0
	}
	e.res.SetVolume(level)
}

// Observe registers fn for current-epoch events and returns its
// unregister function. Unregistering twice is harmless.
func (e *Engine) Observe(fn func(Event)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.observers = append(e.observers, observer{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, o := range e.observers {
				if o.id == id {
					e.observers = append(e.observers[:i], e.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Epoch returns the epoch of the current source.
func (e *Engine) Epoch() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.epoch
}

// Position returns the last position reported for the current source.
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

// Duration returns the duration reported for the current source, 0 if unknown.
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration
}

// Close releases the resource and drops all observers.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.epoch++
	e.loaded = false
	e.observers = nil
	e.mu.Unlock()

	return e.res.Close()
}

// dispatch is the resource sink.
func (e *Engine) dispatch(ev Event) {
	e.mu.Lock()
	if e.closed || ev.Epoch != e.epoch {
		e.mu.Unlock()
		e.log.Debug("stale event dropped",
			zap.Stringer("kind", ev.Kind),
			zap.Uint64("epoch", ev.Epoch))
		return
	}
	switch ev.Kind {
	case TimeUpdated:
		e.position = ev.Position
	case DurationKnown:
		if ev.Duration <= 0 {
			e.mu.Unlock()
			return
		}
		e.duration = ev.Duration
	case CanPlay, Ended, PlayedStateChanged:
	}
	observers := make([]observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.Unlock()

	for _, o := range observers {
		o.fn(ev)
	}
}
