package player

import "sync"

// eventQueue delivers events to a sink in push order on its own
// goroutine. push never blocks, so it is safe to call with locks held.
type eventQueue struct {
	mu      sync.Mutex
	sink    func(Event)
	pending []Event
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.pump()
	return q
}

func (q *eventQueue) setSink(sink func(Event)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sink = sink
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pump() {
	for {
		select {
		case <-q.done:
			return
		case <-q.wake:
		}

		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			ev := q.pending[0]
			q.pending = q.pending[1:]
			sink := q.sink
			q.mu.Unlock()

			if sink != nil {
				sink(ev)
			}
		}
	}
}

// close stops delivery. Pending events are dropped.
func (q *eventQueue) close() {
	q.once.Do(func() {
		close(q.done)
		q.mu.Lock()
		q.pending = nil
		q.mu.Unlock()
	})
}
