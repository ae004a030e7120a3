package player

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

const (
	speakerSampleRate   = beep.SampleRate(44100)
	defaultTickInterval = 250 * time.Millisecond
	fetchTimeout        = 2 * time.Minute
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
	})
	return speakerErr
}

// BeepResource plays sources through the beep speaker.
// Fetching and decoding happen off the caller's goroutine; events are
// queued and delivered in order by a single pump goroutine.
type BeepResource struct {
	mu     sync.Mutex
	log    *zap.Logger
	client *http.Client
	tick   time.Duration

	epoch  uint64
	src    string
	state  State
	cancel context.CancelFunc

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
	finished bool // sequence drained; must be re-queued to play again

	wantPlay    bool
	pendingSeek time.Duration
	stopTick    chan struct{}

	events *eventQueue
}

// Option configures a BeepResource.
type Option func(*BeepResource)

// WithHTTPClient sets the client used to fetch remote sources.
func WithHTTPClient(c *http.Client) Option {
	return func(r *BeepResource) { r.client = c }
}

// WithTickInterval sets how often TimeUpdated is emitted while playing.
func WithTickInterval(d time.Duration) Option {
	return func(r *BeepResource) {
		if d > 0 {
			r.tick = d
		}
	}
}

// NewBeepResource creates a resource with no source loaded.
func NewBeepResource(log *zap.Logger, opts ...Option) *BeepResource {
	if log == nil {
		log = zap.NewNop()
	}
	r := &BeepResource{
		log:    log.Named("resource"),
		client: &http.Client{Timeout: fetchTimeout},
		tick:   defaultTickInterval,
		level:  1,
		events: newEventQueue(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetSink sets the event receiver.
func (r *BeepResource) SetSink(sink func(Event)) {
	r.events.setSink(sink)
}

// State returns the lifecycle state of the current source.
func (r *BeepResource) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Load releases the current source and starts loading src.
func (r *BeepResource) Load(src string, epoch uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.releaseLocked()
	r.epoch = epoch
	r.src = src
	r.wantPlay = false
	r.pendingSeek = 0
	if src == "" {
		r.state = Unloaded
		return
	}
	r.state = Loading

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go r.open(ctx, src, epoch)
}

// open fetches and decodes src, then installs it if still current.
func (r *BeepResource) open(ctx context.Context, src string, epoch uint64) {
	rc, ext, err := openSource(ctx, r.client, src)
	if err != nil {
		r.fail(epoch, "open source", err)
		return
	}
	streamer, format, err := decode(rc, ext)
	if err != nil {
		rc.Close()
		r.fail(epoch, "decode source", err)
		return
	}
	if err := initSpeaker(); err != nil {
		streamer.Close()
		r.fail(epoch, "init speaker", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		// Superseded while loading.
		streamer.Close()
		return
	}

	r.streamer = streamer
	r.format = format

	var out beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		out = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	r.ctrl = &beep.Ctrl{Streamer: out, Paused: true}
	r.volume = &effects.Volume{Streamer: r.ctrl, Base: 2}
	r.applyVolumeLocked()
	r.queueLocked()
	r.state = Paused

	duration := format.SampleRate.D(streamer.Len())
	r.events.push(Event{Kind: DurationKnown, Epoch: epoch, Duration: duration})
	r.events.push(Event{Kind: CanPlay, Epoch: epoch})

	if r.pendingSeek > 0 {
		r.seekLocked(r.pendingSeek)
		r.pendingSeek = 0
	}
	if r.wantPlay {
		r.startLocked()
	}
}

func (r *BeepResource) fail(epoch uint64, op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		return
	}
	r.state = Failed
	r.log.Warn("source unavailable",
		zap.String("op", op),
		zap.String("src", r.src),
		zap.Uint64("epoch", epoch),
		zap.Error(err))
}

// queueLocked hands the current chain to the speaker. The callback runs
// on the speaker goroutine with the speaker lock held, so it must not
// take r.mu synchronously.
func (r *BeepResource) queueLocked() {
	epoch := r.epoch
	r.finished = false
	speaker.Play(beep.Seq(r.volume, beep.Callback(func() {
		go r.onFinished(epoch)
	})))
}

func (r *BeepResource) onFinished(epoch uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch || r.streamer == nil {
		return
	}
	r.finished = true
	wasPlaying := r.state == Playing
	r.state = Paused
	r.stopTickerLocked()
	r.events.push(Event{Kind: TimeUpdated, Epoch: epoch, Position: r.positionLocked()})
	if wasPlaying {
		r.events.push(Event{Kind: PlayedStateChanged, Epoch: epoch, Playing: false})
	}
	r.events.push(Event{Kind: Ended, Epoch: epoch})
}

// releaseLocked tears down the current source, if any.
func (r *BeepResource) releaseLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.stopTickerLocked()
	if r.streamer != nil {
		speaker.Clear()
		r.streamer.Close()
		r.streamer = nil
	}
	r.ctrl = nil
	r.volume = nil
	r.finished = false
}

// Close releases the current source and stops event delivery.
func (r *BeepResource) Close() error {
	r.mu.Lock()
	r.releaseLocked()
	r.epoch = 0
	r.state = Unloaded
	r.mu.Unlock()

	r.events.close()
	return nil
}

// Verify BeepResource implements Resource at compile time.
var _ Resource = (*BeepResource)(nil)
