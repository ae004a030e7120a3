// internal/playback/store_test.go
package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boostlegends/Prodverse/internal/player"
	"github.com/boostlegends/Prodverse/internal/playlist"
)

type memVolume struct {
	level   float64
	ok      bool
	loadErr error
	saveErr error
	saved   []float64
}

func (v *memVolume) LoadVolume() (float64, bool, error) {
	return v.level, v.ok, v.loadErr
}

func (v *memVolume) SaveVolume(level float64) error {
	v.saved = append(v.saved, level)
	return v.saveErr
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *player.Mock) {
	t.Helper()
	m := player.NewMock()
	e := player.NewEngine(m, nil)
	s := New(e, playlist.NewQueue(), opts...)
	s.Init()
	t.Cleanup(func() {
		_ = s.Close()
		_ = e.Close()
	})
	return s, m
}

func track(id string) Track {
	return Track{
		ID:       id,
		Title:    "Song " + id,
		AudioURL: "https://cdn.test/" + id + ".mp3",
	}
}

func queueIDs(snap Snapshot) []string {
	ids := make([]string, len(snap.Queue))
	for i, t := range snap.Queue {
		ids[i] = t.ID
	}
	return ids
}

func TestStore_Init_Volume(t *testing.T) {
	tests := []struct {
		name       string
		vs         *memVolume
		opts       []Option
		wantVolume float64
		wantMuted  bool
	}{
		{"default", nil, nil, DefaultVolume, false},
		{"configured default", nil, []Option{WithDefaultVolume(0.5)}, 0.5, false},
		{"restored", &memVolume{level: 0.3, ok: true}, nil, 0.3, false},
		{"restored zero mutes", &memVolume{level: 0, ok: true}, nil, 0, true},
		{"restored out of range", &memVolume{level: 4, ok: true}, nil, 1, false},
		{"nothing stored", &memVolume{}, nil, DefaultVolume, false},
		{"load error", &memVolume{level: 0.2, ok: true, loadErr: errors.New("locked")}, nil, DefaultVolume, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if tt.vs != nil {
				opts = append(opts, WithVolumeStore(tt.vs))
			}
			s, m := newTestStore(t, opts...)

			level, muted := s.Volume()
			assert.InDelta(t, tt.wantVolume, level, 1e-9)
			assert.Equal(t, tt.wantMuted, muted)
			if tt.wantMuted {
				assert.Zero(t, m.LastVolume())
			} else {
				assert.InDelta(t, tt.wantVolume, m.LastVolume(), 1e-9)
			}
		})
	}
}

func TestStore_InitialSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentTrack)
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.IsPlaying)
	assert.Empty(t, snap.Queue)
	assert.Equal(t, -1, snap.QueueIndex)
	assert.Zero(t, snap.CurrentTime)
	assert.Zero(t, snap.Duration)
}

func TestStore_Play_LoadsAndRequestsPlayback(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")

	s.Play(&a)

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentTrack)
	assert.Equal(t, "a", snap.CurrentTrack.ID)
	assert.Equal(t, StateLoading, snap.State)
	assert.True(t, snap.PlayRequested)
	assert.False(t, snap.IsPlaying, "playing is only confirmed by the engine")
	assert.Equal(t, []string{"a"}, queueIDs(snap))
	assert.Equal(t, 0, snap.QueueIndex)
	require.Len(t, m.Loads(), 1)
	assert.Equal(t, a.AudioURL, m.Loads()[0].Src)
	assert.Equal(t, 1, m.PlayCalls())

	m.EmitPlaying(true)
	snap = s.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.True(t, snap.IsPlaying)
}

func TestStore_Play_PrefersStreamURL(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	a.StreamURL = "https://stream.test/a"

	s.Play(&a)

	require.Len(t, m.Loads(), 1)
	assert.Equal(t, a.StreamURL, m.Loads()[0].Src)
}

func TestStore_Play_SameTrackTwice(t *testing.T) {
	s, m := newTestStore(t)
	a, b := track("a"), track("b")
	s.Play(&a)
	s.AddToQueue(b)
	before := s.Snapshot()

	s.Play(&a)

	after := s.Snapshot()
	assert.Equal(t, []string{"a", "b"}, queueIDs(after))
	assert.Equal(t, before.QueueIndex, after.QueueIndex)
	assert.Len(t, m.Loads(), 1, "same source is resumed, not reloaded")
	assert.Equal(t, 2, m.PlayCalls())
}

func TestStore_Play_RefreshedSourceReloads(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	m.EmitPlaying(true)
	m.EmitTimeUpdate(20 * time.Second)

	refreshed := a
	refreshed.AudioURL = "https://cdn.test/a-refreshed.mp3"
	s.Play(&refreshed)

	snap := s.Snapshot()
	assert.Len(t, snap.Queue, 1)
	assert.Equal(t, refreshed.AudioURL, snap.Queue[0].AudioURL)
	assert.Equal(t, refreshed.AudioURL, snap.CurrentTrack.AudioURL)
	assert.Equal(t, StateLoading, snap.State)
	assert.Zero(t, snap.CurrentTime)
	require.Len(t, m.Loads(), 2)
	assert.Equal(t, refreshed.AudioURL, m.Loads()[1].Src)
}

func TestStore_Play_QueuedTrackKeepsPosition(t *testing.T) {
	s, _ := newTestStore(t)
	a, b, c := track("a"), track("b"), track("c")
	s.Play(&a)
	s.AddToQueue(b)
	s.AddToQueue(c)

	s.Play(&b)

	snap := s.Snapshot()
	assert.Equal(t, []string{"a", "b", "c"}, queueIDs(snap))
	assert.Equal(t, 1, snap.QueueIndex)
	assert.Equal(t, "b", snap.CurrentTrack.ID)
}

func TestStore_Play_NilWithoutTrackIsNoop(t *testing.T) {
	s, m := newTestStore(t)

	s.Play(nil)

	assert.Equal(t, StateIdle, s.State())
	assert.Zero(t, m.PlayCalls())
}

func TestStore_Play_StartFailureIsSwallowed(t *testing.T) {
	s, m := newTestStore(t)
	m.SetPlayError(errors.New("autoplay blocked"))
	a := track("a")

	assert.NotPanics(t, func() { s.Play(&a) })
	assert.Equal(t, StateLoading, s.State())
	assert.False(t, s.Snapshot().IsPlaying)
}

func TestStore_QueueNeverHoldsDuplicateIDs(t *testing.T) {
	s, _ := newTestStore(t)

	ops := []struct {
		play bool
		id   string
	}{
		{true, "a"}, {false, "b"}, {false, "a"}, {true, "b"}, {false, "c"},
		{true, "a"}, {true, "c"}, {false, "c"}, {true, "d"}, {false, "b"},
	}
	for _, op := range ops {
		tr := track(op.id)
		if op.play {
			s.Play(&tr)
		} else {
			s.AddToQueue(tr)
		}

		seen := map[string]bool{}
		for _, id := range queueIDs(s.Snapshot()) {
			require.False(t, seen[id], "duplicate %q in queue", id)
			seen[id] = true
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, queueIDs(s.Snapshot()))
}

func TestStore_AddToQueue(t *testing.T) {
	s, m := newTestStore(t)
	a, b := track("a"), track("b")
	s.Play(&a)
	m.EmitPlaying(true)

	s.AddToQueue(b)

	snap := s.Snapshot()
	assert.Equal(t, []string{"a", "b"}, queueIDs(snap))
	assert.Equal(t, 0, snap.QueueIndex)
	assert.Equal(t, "a", snap.CurrentTrack.ID)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Len(t, m.Loads(), 1)
}

func TestStore_AddToQueue_WithoutCurrentSelectsNothing(t *testing.T) {
	s, m := newTestStore(t)

	s.AddToQueue(track("a"))

	snap := s.Snapshot()
	assert.Equal(t, -1, snap.QueueIndex)
	assert.Nil(t, snap.CurrentTrack)
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, m.Loads())
}

func TestStore_AddToQueue_EmptyIDAlwaysAppends(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToQueue(Track{Title: "untitled"})
	s.AddToQueue(Track{Title: "untitled"})

	assert.Len(t, s.Snapshot().Queue, 2)
}

func TestStore_PlayNextPrevious(t *testing.T) {
	s, m := newTestStore(t)
	a, b, c := track("a"), track("b"), track("c")
	s.Play(&a)
	s.AddToQueue(b)
	s.AddToQueue(c)

	s.PlayNext()
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.QueueIndex)
	assert.Equal(t, "b", snap.CurrentTrack.ID)
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, b.AudioURL, m.Loads()[len(m.Loads())-1].Src)

	s.PlayPrevious()
	snap = s.Snapshot()
	assert.Equal(t, 0, snap.QueueIndex)
	assert.Equal(t, "a", snap.CurrentTrack.ID)
	assert.Len(t, m.Loads(), 3)
	assert.Equal(t, 3, m.PlayCalls())
}

func TestStore_PlayNext_AtEndIsNoop(t *testing.T) {
	s, m := newTestStore(t)
	a, b := track("a"), track("b")
	s.AddToQueue(a)
	s.Play(&b)
	m.EmitDuration(time.Minute)
	m.EmitPlaying(true)
	m.EmitTimeUpdate(10 * time.Second)
	before := s.Snapshot()
	loads := len(m.Loads())

	s.PlayNext()

	assert.Equal(t, before, s.Snapshot())
	assert.Len(t, m.Loads(), loads)
}

func TestStore_PlayPrevious_AtStartIsNoop(t *testing.T) {
	s, m := newTestStore(t)
	a, b := track("a"), track("b")
	s.Play(&a)
	s.AddToQueue(b)
	m.EmitPlaying(true)
	before := s.Snapshot()

	s.PlayPrevious()

	assert.Equal(t, before, s.Snapshot())
	assert.Len(t, m.Loads(), 1)
}

func TestStore_NextPreviousAvailability(t *testing.T) {
	s, _ := newTestStore(t)
	a, b := track("a"), track("b")
	s.Play(&a)
	s.AddToQueue(b)

	snap := s.Snapshot()
	assert.True(t, snap.HasNext)
	assert.False(t, snap.HasPrevious)

	s.PlayNext()
	snap = s.Snapshot()
	assert.False(t, snap.HasNext)
	assert.True(t, snap.HasPrevious)
}

func TestStore_PauseAndToggle(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	m.EmitPlaying(true)

	s.Pause()
	assert.Equal(t, 1, m.PauseCalls())
	assert.Equal(t, StatePlaying, s.State(), "pause is confirmed by the engine")
	assert.False(t, s.Snapshot().PlayRequested)

	m.EmitPlaying(false)
	assert.Equal(t, StatePaused, s.State())
	assert.False(t, s.Snapshot().IsPlaying)

	s.TogglePlay()
	assert.Equal(t, 2, m.PlayCalls())
	m.EmitPlaying(true)
	assert.Equal(t, StatePlaying, s.State())

	s.TogglePlay()
	assert.Equal(t, 2, m.PauseCalls())
}

func TestStore_TogglePlay(t *testing.T) {
	tests := []struct {
		name       string
		failStart  bool
		confirm    bool
		wantPlays  int
		wantPauses int
		wantReq    bool
	}{
		{"retries a start that failed", true, false, 2, 0, true},
		{"retries while still loading", false, false, 2, 0, true},
		{"pauses when playing", false, true, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestStore(t)
			if tt.failStart {
				m.SetPlayError(errors.New("autoplay blocked"))
			}
			a := track("a")
			s.Play(&a)
			m.SetPlayError(nil)
			if tt.confirm {
				m.EmitCanPlay()
				m.EmitPlaying(true)
			}

			s.TogglePlay()

			assert.Equal(t, tt.wantPlays, m.PlayCalls())
			assert.Equal(t, tt.wantPauses, m.PauseCalls())
			assert.Equal(t, tt.wantReq, s.Snapshot().PlayRequested)
		})
	}
}

func TestStore_Pause_WhileLoading(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)

	s.Pause()

	assert.Equal(t, StatePaused, s.State())
	m.EmitCanPlay()
	assert.Equal(t, StatePaused, s.State())
}

func TestStore_Pause_WithoutTrackIsNoop(t *testing.T) {
	s, m := newTestStore(t)

	s.Pause()
	s.TogglePlay()

	assert.Zero(t, m.PauseCalls())
	assert.Zero(t, m.PlayCalls())
	assert.Equal(t, StateIdle, s.State())
}

func TestStore_CanPlayAfterPausedLoadSettles(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	m.EmitCanPlay()

	assert.Equal(t, StateLoading, s.State(), "still waiting for playback to start")
}

func TestStore_SetVolume(t *testing.T) {
	tests := []struct {
		name      string
		level     float64
		wantLevel float64
		wantMuted bool
	}{
		{"half", 0.5, 0.5, false},
		{"zero mutes", 0, 0, true},
		{"above range", 1.5, 1, false},
		{"below range", -0.5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := &memVolume{}
			s, m := newTestStore(t, WithVolumeStore(vs))

			s.SetVolume(tt.level)

			snap := s.Snapshot()
			assert.InDelta(t, tt.wantLevel, snap.Volume, 1e-9)
			assert.Equal(t, tt.wantMuted, snap.IsMuted)
			assert.InDelta(t, tt.wantLevel, m.LastVolume(), 1e-9)
			assert.Equal(t, []float64{tt.wantLevel}, vs.saved)
		})
	}
}

func TestStore_SetVolume_UnmutesRegardlessOfPriorMute(t *testing.T) {
	s, _ := newTestStore(t)
	s.ToggleMute()
	require.True(t, s.Snapshot().IsMuted)

	s.SetVolume(0.5)

	assert.False(t, s.Snapshot().IsMuted)
}

func TestStore_SetVolume_SaveErrorIsLogged(t *testing.T) {
	vs := &memVolume{saveErr: errors.New("disk full")}
	s, _ := newTestStore(t, WithVolumeStore(vs))

	assert.NotPanics(t, func() { s.SetVolume(0.4) })
	assert.InDelta(t, 0.4, s.Snapshot().Volume, 1e-9)
}

func TestStore_ToggleMute_KeepsVolume(t *testing.T) {
	vs := &memVolume{}
	s, m := newTestStore(t, WithVolumeStore(vs))
	s.SetVolume(0.6)

	s.ToggleMute()
	snap := s.Snapshot()
	assert.True(t, snap.IsMuted)
	assert.InDelta(t, 0.6, snap.Volume, 1e-9)
	assert.Zero(t, m.LastVolume())

	s.ToggleMute()
	snap = s.Snapshot()
	assert.False(t, snap.IsMuted)
	assert.InDelta(t, 0.6, snap.Volume, 1e-9)
	assert.InDelta(t, 0.6, m.LastVolume(), 1e-9)
	assert.Equal(t, []float64{0.6}, vs.saved, "mute is not persisted")
}

func TestStore_Seek(t *testing.T) {
	tests := []struct {
		name   string
		target time.Duration
		want   time.Duration
	}{
		{"within", 90 * time.Second, 90 * time.Second},
		{"negative", -3 * time.Second, 0},
		{"past end", 10 * time.Minute, 200 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestStore(t)
			a := track("a")
			s.Play(&a)
			m.EmitDuration(200 * time.Second)

			s.Seek(tt.target)

			assert.Equal(t, tt.want, s.CurrentTime(), "updated before any engine event")
			assert.Equal(t, []time.Duration{tt.want}, m.SeekCalls())
		})
	}
}

func TestStore_Seek_UnknownDurationIsNoop(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	m.EmitTimeUpdate(5 * time.Second)

	s.Seek(30 * time.Second)

	assert.Equal(t, 5*time.Second, s.CurrentTime())
	assert.Empty(t, m.SeekCalls())
}

func TestStore_Seek_UsesDeclaredDuration(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	a.Duration = time.Minute
	s.Play(&a)

	s.Seek(2 * time.Minute)

	assert.Equal(t, time.Minute, s.CurrentTime())
	assert.Equal(t, []time.Duration{time.Minute}, m.SeekCalls())
}

func TestStore_TimeUpdates(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)

	m.EmitTimeUpdate(12 * time.Second)

	assert.Equal(t, 12*time.Second, s.CurrentTime())
}

func TestStore_IgnoresStaleEpoch(t *testing.T) {
	s, m := newTestStore(t)
	a, b := track("a"), track("b")
	s.Play(&a)
	old := m.CurrentEpoch()
	s.Play(&b)
	before := s.Snapshot()

	m.Emit(player.Event{Kind: player.TimeUpdated, Epoch: old, Position: time.Minute})
	m.Emit(player.Event{Kind: player.DurationKnown, Epoch: old, Duration: time.Hour})
	m.Emit(player.Event{Kind: player.Ended, Epoch: old})

	assert.Equal(t, before, s.Snapshot())
}

// Queue [X, Y] at index 0: resuming X then reaching its end advances to Y.
func TestStore_EndedAdvancesToNext(t *testing.T) {
	s, m := newTestStore(t)
	x, y := track("x"), track("y")
	s.Play(&x)
	s.AddToQueue(y)
	m.EmitDuration(time.Minute)
	s.Pause()
	m.EmitPlaying(false)
	require.Equal(t, StatePaused, s.State())

	s.Play(nil)
	m.EmitPlaying(true)
	snap := s.Snapshot()
	require.Equal(t, "x", snap.CurrentTrack.ID)
	require.True(t, snap.IsPlaying)

	m.EmitEnded()
	snap = s.Snapshot()
	assert.Equal(t, 1, snap.QueueIndex)
	assert.Equal(t, "y", snap.CurrentTrack.ID)
	assert.Equal(t, StateLoading, snap.State)
	assert.True(t, snap.PlayRequested)
	assert.Zero(t, snap.CurrentTime)
	assert.Zero(t, snap.ReportedDuration)
	assert.Equal(t, y.AudioURL, m.Loads()[len(m.Loads())-1].Src)

	m.EmitPlaying(true)
	snap = s.Snapshot()
	assert.True(t, snap.IsPlaying)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 1, snap.QueueIndex)
}

func TestStore_EndedOnLastTrackPausesAtEnd(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	m.EmitDuration(3 * time.Minute)
	m.EmitPlaying(true)

	m.EmitEnded()

	snap := s.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	require.NotNil(t, snap.CurrentTrack)
	assert.Equal(t, "a", snap.CurrentTrack.ID)
	assert.False(t, snap.IsPlaying)
	assert.Equal(t, 3*time.Minute, snap.CurrentTime)

	s.Play(nil)
	assert.Equal(t, 2, m.PlayCalls(), "ended track can be replayed")
}

func TestStore_ClearQueue(t *testing.T) {
	setups := map[string]func(s *Store, m *player.Mock){
		"idle": func(*Store, *player.Mock) {},
		"loading": func(s *Store, _ *player.Mock) {
			a := track("a")
			s.Play(&a)
		},
		"playing": func(s *Store, m *player.Mock) {
			a, b := track("a"), track("b")
			s.Play(&a)
			s.AddToQueue(b)
			m.EmitDuration(time.Minute)
			m.EmitPlaying(true)
			m.EmitTimeUpdate(30 * time.Second)
		},
		"paused": func(s *Store, m *player.Mock) {
			a := track("a")
			s.Play(&a)
			m.EmitPlaying(true)
			s.Pause()
			m.EmitPlaying(false)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s, m := newTestStore(t)
			setup(s, m)

			s.ClearQueue()

			snap := s.Snapshot()
			assert.Empty(t, snap.Queue)
			assert.Equal(t, -1, snap.QueueIndex)
			assert.Nil(t, snap.CurrentTrack)
			assert.False(t, snap.IsPlaying)
			assert.False(t, snap.PlayRequested)
			assert.Equal(t, StateIdle, snap.State)
			assert.Zero(t, snap.CurrentTime)
			assert.Zero(t, snap.Duration)
		})
	}
}

func TestStore_ClearQueue_DiscardsPendingEvents(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	s.Play(&a)
	old := m.CurrentEpoch()

	s.ClearQueue()
	m.Emit(player.Event{Kind: player.PlayedStateChanged, Epoch: old, Playing: true})
	m.EmitPlaying(true)

	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.Snapshot().IsPlaying)
}

func TestStore_DurationFallsBackToTrack(t *testing.T) {
	s, m := newTestStore(t)
	a := track("a")
	a.Duration = 180 * time.Second
	s.Play(&a)

	assert.Equal(t, 180*time.Second, s.Duration())
	assert.Zero(t, s.Snapshot().ReportedDuration)

	m.EmitDuration(182400 * time.Millisecond)

	assert.Equal(t, 182400*time.Millisecond, s.Duration())
	assert.Equal(t, 182400*time.Millisecond, s.Snapshot().Duration)
}

func TestStore_DurationWithoutAnySource(t *testing.T) {
	s, _ := newTestStore(t)
	a := track("a")
	s.Play(&a)

	assert.Zero(t, s.Duration())
}

func TestSnapshot_Progress(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"unknown duration", Snapshot{CurrentTime: time.Second}, 0},
		{"half", Snapshot{CurrentTime: 30 * time.Second, Duration: time.Minute}, 0.5},
		{"past end", Snapshot{CurrentTime: 2 * time.Minute, Duration: time.Minute}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.snap.Progress(), 1e-9)
		})
	}
}

func TestStore_Stalled(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s, m := newTestStore(t, WithClock(func() time.Time { return now }))
	a := track("a")

	assert.False(t, s.Stalled(0), "nothing requested")

	s.Play(&a)
	now = now.Add(5 * time.Second)
	assert.False(t, s.Stalled(10*time.Second))

	now = now.Add(6 * time.Second)
	assert.True(t, s.Stalled(10*time.Second))

	m.EmitPlaying(true)
	assert.False(t, s.Stalled(10*time.Second))
}

func TestStore_Stalled_ResetsOnNewLoad(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, WithClock(func() time.Time { return now }))
	a, b := track("a"), track("b")

	s.Play(&a)
	now = now.Add(time.Minute)
	s.Play(&b)

	assert.False(t, s.Stalled(10*time.Second))
}

func TestStore_Subscribe_ReceivesChanges(t *testing.T) {
	s, m := newTestStore(t)
	sub := s.Subscribe()
	a := track("a")

	s.Play(&a)

	select {
	case e := <-sub.StateChanged:
		assert.Equal(t, StateIdle, e.Previous)
		assert.Equal(t, StateLoading, e.Current)
	default:
		t.Fatal("expected StateChanged")
	}
	select {
	case e := <-sub.TrackChanged:
		assert.Nil(t, e.Previous)
		require.NotNil(t, e.Current)
		assert.Equal(t, "a", e.Current.ID)
		assert.Equal(t, 0, e.Index)
	default:
		t.Fatal("expected TrackChanged")
	}
	select {
	case e := <-sub.QueueChanged:
		assert.Len(t, e.Tracks, 1)
		assert.Equal(t, 0, e.Index)
	default:
		t.Fatal("expected QueueChanged")
	}

	m.EmitTimeUpdate(3 * time.Second)
	select {
	case e := <-sub.PositionChanged:
		assert.Equal(t, 3*time.Second, e.Position)
	default:
		t.Fatal("expected PositionChanged")
	}

	s.ToggleMute()
	select {
	case e := <-sub.VolumeChanged:
		assert.True(t, e.Muted)
	default:
		t.Fatal("expected VolumeChanged")
	}
}

func TestStore_Subscribe_NoTrackChangeOnResume(t *testing.T) {
	s, _ := newTestStore(t)
	a := track("a")
	s.Play(&a)
	s.Pause()
	sub := s.Subscribe()

	s.Play(&a)

	select {
	case <-sub.TrackChanged:
		t.Fatal("resume must not emit TrackChanged")
	default:
	}
}

func TestStore_OnChange(t *testing.T) {
	s, m := newTestStore(t)
	var got []Snapshot
	unregister := s.OnChange(func(snap Snapshot) {
		got = append(got, snap)
	})
	a := track("a")

	s.Play(&a)
	m.EmitPlaying(true)
	require.Len(t, got, 2)
	assert.Equal(t, StateLoading, got[0].State)
	assert.Equal(t, StatePlaying, got[1].State)

	unregister()
	unregister()
	s.Pause()
	assert.Len(t, got, 2)
}

func TestStore_OnChange_CanReadStore(t *testing.T) {
	s, _ := newTestStore(t)
	var state State
	s.OnChange(func(Snapshot) {
		state = s.State()
	})
	a := track("a")

	s.Play(&a)

	assert.Equal(t, StateLoading, state)
}

func TestStore_Close(t *testing.T) {
	m := player.NewMock()
	e := player.NewEngine(m, nil)
	defer e.Close()
	s := New(e, playlist.NewQueue())
	s.Init()
	sub := s.Subscribe()
	a := track("a")
	s.Play(&a)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done not closed")
	}
	assert.Equal(t, 1, m.PauseCalls())

	m.EmitPlaying(true)
	s.SetVolume(0.1)
	assert.Equal(t, StateLoading, s.State())
	assert.NotEqual(t, 0.1, s.Snapshot().Volume)
}

func TestStore_SubscribeAfterClose(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Close())

	sub := s.Subscribe()

	select {
	case <-sub.Done:
	default:
		t.Fatal("subscription after Close is not done")
	}
	a := track("a")
	s.Play(&a)
	assert.Empty(t, sub.TrackChanged)
}
