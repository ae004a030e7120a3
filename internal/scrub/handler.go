// Package scrub turns pointer and touch gestures over a linear progress
// control into seeks.
//
// While a drag is in progress the held drag position is shown instead
// of the live playback time, and nothing is committed until release.
package scrub

import (
	"math"
	"sync"
	"time"
)

// Bounds is the horizontal extent of the control in input coordinates.
type Bounds struct {
	Left  float64
	Width float64
}

// Percent converts x to a position along the bounds, clamped to 0-100.
func (b Bounds) Percent(x float64) float64 {
	if b.Width <= 0 {
		return 0
	}
	p := (x - b.Left) / b.Width * 100
	return min(max(p, 0), 100)
}

// Seeker commits a seek. *playback.Store satisfies it.
type Seeker interface {
	Seek(position time.Duration)
}

// Handler tracks one progress control. It is safe for concurrent use.
type Handler struct {
	mu        sync.Mutex
	bounds    Bounds
	duration  func() time.Duration
	seeker    Seeker
	listeners *Listeners

	dragging    bool
	dragPercent float64
	removers    []func()

	hovering     bool
	hoverPercent float64
}

// New creates a handler. duration returns the effective duration of the
// current track; a zero duration disables seeking.
func New(seeker Seeker, duration func() time.Duration, listeners *Listeners) *Handler {
	if listeners == nil {
		listeners = NewListeners()
	}
	return &Handler{
		duration:  duration,
		seeker:    seeker,
		listeners: listeners,
	}
}

// Listeners returns the registry drag listeners are attached to.
func (h *Handler) Listeners() *Listeners {
	return h.listeners
}

// SetBounds updates the control geometry.
func (h *Handler) SetBounds(b Bounds) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bounds = b
}

// Bounds returns the control geometry.
func (h *Handler) Bounds() Bounds {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds
}

// Click seeks straight to x. Ignored while a drag is in progress, since
// the drag commits on release.
func (h *Handler) Click(x float64) {
	h.mu.Lock()
	if h.dragging {
		h.mu.Unlock()
		return
	}
	duration := h.duration()
	if duration <= 0 {
		h.mu.Unlock()
		return
	}
	target := percentToTime(h.bounds.Percent(x), duration)
	h.mu.Unlock()

	h.seeker.Seek(target)
}

// PointerDown starts a mouse drag at x.
func (h *Handler) PointerDown(x float64) {
	h.startDrag(x)
}

// TouchStart starts a touch drag at x.
func (h *Handler) TouchStart(x float64) {
	h.startDrag(x)
}

// startDrag holds the position under x and attaches the move and release
// listeners of both gesture families for the life of the drag.
func (h *Handler) startDrag(x float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dragging || h.duration() <= 0 {
		return
	}
	h.dragging = true
	h.dragPercent = h.bounds.Percent(x)
	h.removers = []func(){
		h.listeners.Add(MouseMove, h.move),
		h.listeners.Add(MouseUp, h.release),
		h.listeners.Add(TouchMove, h.move),
		h.listeners.Add(TouchEnd, h.release),
	}
}

func (h *Handler) move(x float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dragging {
		h.dragPercent = h.bounds.Percent(x)
	}
}

// release commits exactly one seek for the drag.
func (h *Handler) release(x float64) {
	h.mu.Lock()
	if !h.dragging {
		h.mu.Unlock()
		return
	}
	percent := h.bounds.Percent(x)
	duration := h.duration()
	h.endDragLocked()
	h.mu.Unlock()

	if duration > 0 {
		h.seeker.Seek(percentToTime(percent, duration))
	}
}

// Cancel ends a drag without seeking.
func (h *Handler) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.endDragLocked()
}

// endDragLocked is the only place drag listeners are removed.
func (h *Handler) endDragLocked() {
	for _, remove := range h.removers {
		remove()
	}
	h.removers = nil
	h.dragging = false
	h.dragPercent = 0
}

// Dragging reports whether a drag is in progress.
func (h *Handler) Dragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dragging
}

// Hover records the pointer position for the time tooltip. It never
// affects playback or the drag.
func (h *Handler) Hover(x float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hovering = true
	h.hoverPercent = h.bounds.Percent(x)
}

// Leave clears the hover position.
func (h *Handler) Leave() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hovering = false
	h.hoverPercent = 0
}

// HoverPercent returns the hover position, ok=false when not hovering.
func (h *Handler) HoverPercent() (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hoverPercent, h.hovering
}

// HoverTime returns the time under the pointer for the tooltip.
// ok is false when not hovering, while dragging, or with no duration.
func (h *Handler) HoverTime() (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	duration := h.duration()
	if !h.hovering || h.dragging || duration <= 0 {
		return 0, false
	}
	return percentToTime(h.hoverPercent, duration), true
}

// DisplayPercent returns the fill of the control: the held drag position
// while dragging, else current as a share of the duration.
func (h *Handler) DisplayPercent(current time.Duration) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dragging {
		return h.dragPercent
	}
	duration := h.duration()
	if duration <= 0 {
		return 0
	}
	p := float64(current) / float64(duration) * 100
	return min(max(p, 0), 100)
}

// DisplayTime returns the time matching DisplayPercent.
func (h *Handler) DisplayTime(current time.Duration) time.Duration {
	h.mu.Lock()
	dragging, percent := h.dragging, h.dragPercent
	h.mu.Unlock()
	if !dragging {
		return current
	}
	return percentToTime(percent, h.duration())
}

func percentToTime(percent float64, duration time.Duration) time.Duration {
	return time.Duration(math.Round(percent / 100 * float64(duration)))
}
