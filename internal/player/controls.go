package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Play starts output, or defers it until the source is decoded.
func (r *BeepResource) Play() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case Unloaded:
		return ErrNoSource
	case Loading, Failed:
		// A failed source never starts; the request is remembered in
		// case the same source is loaded again.
		r.wantPlay = true
		return nil
	case Playing:
		return nil
	case Paused:
	}
	r.startLocked()
	return nil
}

func (r *BeepResource) startLocked() {
	if r.ctrl == nil {
		return
	}
	if r.finished {
		speaker.Lock()
		_ = r.streamer.Seek(0)
		speaker.Unlock()
		r.queueLocked()
		r.events.push(Event{Kind: TimeUpdated, Epoch: r.epoch, Position: 0})
	}
	speaker.Lock()
	r.ctrl.Paused = false
	speaker.Unlock()

	r.wantPlay = false
	r.state = Playing
	r.events.push(Event{Kind: PlayedStateChanged, Epoch: r.epoch, Playing: true})
	r.startTickerLocked()
}

// Pause stops output. Pausing a source that is not playing only clears a
// deferred play request.
func (r *BeepResource) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wantPlay = false
	if !r.state.CanPause() || r.ctrl == nil {
		return
	}
	speaker.Lock()
	r.ctrl.Paused = true
	speaker.Unlock()

	r.state = Paused
	r.stopTickerLocked()
	r.events.push(Event{Kind: PlayedStateChanged, Epoch: r.epoch, Playing: false})
	r.events.push(Event{Kind: TimeUpdated, Epoch: r.epoch, Position: r.positionLocked()})
}

// Seek moves to an absolute position, clamped to the source length.
func (r *BeepResource) Seek(position time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Loading {
		r.pendingSeek = position
		return
	}
	if r.streamer == nil {
		return
	}
	r.seekLocked(position)
}

func (r *BeepResource) seekLocked(position time.Duration) {
	n := r.format.SampleRate.N(position)
	n = min(max(n, 0), max(r.streamer.Len()-1, 0))

	speaker.Lock()
	_ = r.streamer.Seek(n)
	speaker.Unlock()

	if r.finished && r.state != Playing {
		// Seeking after the end rewinds into a drained sequence.
		r.queueLocked()
	}
	r.events.push(Event{Kind: TimeUpdated, Epoch: r.epoch, Position: r.positionLocked()})
}

// SetVolume sets the output level (0.0 to 1.0).
func (r *BeepResource) SetVolume(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.level = clampLevel(level)
	r.applyVolumeLocked()
}

func (r *BeepResource) applyVolumeLocked() {
	if r.volume == nil {
		return
	}
	speaker.Lock()
	r.volume.Silent = r.level <= 0
	r.volume.Volume = levelToVolume(r.level)
	speaker.Unlock()
}

func (r *BeepResource) positionLocked() time.Duration {
	if r.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := r.streamer.Position()
	speaker.Unlock()
	return r.format.SampleRate.D(pos)
}

func (r *BeepResource) startTickerLocked() {
	r.stopTickerLocked()
	stop := make(chan struct{})
	r.stopTick = stop
	epoch := r.epoch
	go func() {
		t := time.NewTicker(r.tick)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				r.mu.Lock()
				if r.epoch != epoch || r.state != Playing {
					r.mu.Unlock()
					return
				}
				r.events.push(Event{Kind: TimeUpdated, Epoch: epoch, Position: r.positionLocked()})
				r.mu.Unlock()
			}
		}
	}()
}

func (r *BeepResource) stopTickerLocked() {
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
}
