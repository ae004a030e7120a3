package scrub

import "sync"

// Kind identifies a document-level gesture event.
type Kind int

const (
	MouseMove Kind = iota
	MouseUp
	TouchMove
	TouchEnd
)

// String returns the DOM-style event name.
func (k Kind) String() string {
	switch k {
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

type listener struct {
	id int
	fn func(x float64)
}

// Listeners is a registry of gesture callbacks keyed by event kind.
// Every Add returns the matching remove function.
type Listeners struct {
	mu       sync.Mutex
	nextID   int
	handlers map[Kind][]listener
}

// NewListeners creates an empty registry.
func NewListeners() *Listeners {
	return &Listeners{handlers: make(map[Kind][]listener)}
}

// Add registers fn for kind. Calling remove more than once is harmless.
func (l *Listeners) Add(kind Kind, fn func(x float64)) (remove func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.handlers[kind] = append(l.handlers[kind], listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(kind, id) })
	}
}

func (l *Listeners) remove(kind Kind, id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	hs := l.handlers[kind]
	for i, h := range hs {
		if h.id == id {
			l.handlers[kind] = append(hs[:i:i], hs[i+1:]...)
			break
		}
	}
	if len(l.handlers[kind]) == 0 {
		delete(l.handlers, kind)
	}
}

// Dispatch calls every listener registered for kind with x and returns
// how many were called. Listeners may remove themselves while running.
func (l *Listeners) Dispatch(kind Kind, x float64) int {
	l.mu.Lock()
	hs := append([]listener(nil), l.handlers[kind]...)
	l.mu.Unlock()

	for _, h := range hs {
		h.fn(x)
	}
	return len(hs)
}

// Count returns the number of registered listeners of all kinds.
func (l *Listeners) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, hs := range l.handlers {
		n += len(hs)
	}
	return n
}
