// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Load records a Mock.Load call.
type Load struct {
	Src   string
	Epoch uint64
}

// Mock is a test double for Resource. It never emits on its own;
// tests drive events through the Emit helpers.
type Mock struct {
	mu        sync.Mutex
	sink      func(Event)
	loads     []Load
	playCalls int
	pauses    int
	seeks     []time.Duration
	volumes   []float64
	playErr   error
	closed    bool
}

// NewMock creates a new mock resource for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load(src string, epoch uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, Load{Src: src, Epoch: epoch})
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	return m.playErr
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
}

func (m *Mock) Seek(position time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, position)
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes = append(m.volumes, level)
}

func (m *Mock) SetSink(sink func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sink = sink
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) Loads() []Load {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Load(nil), m.loads...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seeks...)
}

// LastVolume returns the last applied output level, or -1 if none.
func (m *Mock) LastVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.volumes) == 0 {
		return -1
	}
	return m.volumes[len(m.volumes)-1]
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// CurrentEpoch returns the epoch of the last Load, 0 if none.
func (m *Mock) CurrentEpoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.loads) == 0 {
		return 0
	}
	return m.loads[len(m.loads)-1].Epoch
}

// Emit delivers ev as-is, epoch included.
func (m *Mock) Emit(ev Event) {
	m.mu.Lock()
	sink := m.sink
	m.mu.Unlock()
	if sink != nil {
		sink(ev)
	}
}

// EmitTimeUpdate reports a position for the current source.
func (m *Mock) EmitTimeUpdate(position time.Duration) {
	m.Emit(Event{Kind: TimeUpdated, Epoch: m.CurrentEpoch(), Position: position})
}

// EmitDuration reports the duration of the current source.
func (m *Mock) EmitDuration(duration time.Duration) {
	m.Emit(Event{Kind: DurationKnown, Epoch: m.CurrentEpoch(), Duration: duration})
}

// EmitCanPlay reports that the current source is ready.
func (m *Mock) EmitCanPlay() {
	m.Emit(Event{Kind: CanPlay, Epoch: m.CurrentEpoch()})
}

// EmitPlaying reports a play/pause transition of the current source.
func (m *Mock) EmitPlaying(playing bool) {
	m.Emit(Event{Kind: PlayedStateChanged, Epoch: m.CurrentEpoch(), Playing: playing})
}

// EmitEnded simulates the current source finishing the way a media
// element does: a pause notification followed by the end notification.
func (m *Mock) EmitEnded() {
	m.EmitPlaying(false)
	m.Emit(Event{Kind: Ended, Epoch: m.CurrentEpoch()})
}

// Verify Mock implements Resource at compile time.
var _ Resource = (*Mock)(nil)
