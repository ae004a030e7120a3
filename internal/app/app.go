// Package app is the terminal user interface: the song catalog, the
// queue and the player bar, wired to the playback store.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/notify"
	"github.com/boostlegends/Prodverse/internal/playback"
	"github.com/boostlegends/Prodverse/internal/scrub"
	"github.com/boostlegends/Prodverse/internal/state"
	"github.com/boostlegends/Prodverse/internal/ui/confirm"
	"github.com/boostlegends/Prodverse/internal/ui/headerbar"
	"github.com/boostlegends/Prodverse/internal/ui/helpbindings"
	"github.com/boostlegends/Prodverse/internal/ui/layout"
	"github.com/boostlegends/Prodverse/internal/ui/queuepanel"
	"github.com/boostlegends/Prodverse/internal/ui/songlist"
)

const (
	seekStep     = 5 * time.Second
	seekStepLong = 30 * time.Second
	volumeStep   = 0.05

	defaultStallThreshold = 10 * time.Second
)

// confirmClearQueue tags the queue clearing dialog.
const confirmClearQueue = "clear-queue"

// Deps are the services the UI drives. Store and Source are required.
type Deps struct {
	Store     *playback.Store
	Source    catalog.Source
	Refresher catalog.Refresher // nil when the source cannot refresh URLs
	Cache     catalog.Cache     // nil disables the offline catalog
	State     state.Interface   // nil disables selection persistence

	NowPlaying *notify.NowPlaying // nil disables notifications

	// Stderr carries native library output; CatalogChanged fires when
	// the catalog file is rewritten. Either may be nil.
	Stderr         <-chan string
	CatalogChanged <-chan struct{}

	StallThreshold time.Duration
	Log            *zap.Logger
}

// Model is the root application model.
type Model struct {
	store      *playback.Store
	sub        *playback.Subscription
	source     catalog.Source
	refresher  catalog.Refresher
	cache      catalog.Cache
	state      state.Interface
	nowPlaying *notify.NowPlaying
	stderr     <-chan string
	changed    <-chan struct{}
	stall      time.Duration
	log        *zap.Logger

	keys  *keymap.Resolver
	scrub *scrub.Handler

	songs songlist.Model
	queue queuepanel.Model
	help    helpbindings.Model
	confirm confirm.Model

	focus        headerbar.Focus
	queueVisible bool
	loading      bool
	stale        bool
	restoreID    string

	status        string
	statusVersion int
	errMsg        string

	snap   playback.Snapshot
	frame  layout.Frame
	Width  int
	Height int
}

// New creates the application model. It subscribes to the store; the
// subscription ends when the store is closed.
func New(d Deps) Model {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	stall := d.StallThreshold
	if stall <= 0 {
		stall = defaultStallThreshold
	}
	keys := keymap.NewResolver(keymap.Bindings)

	m := Model{
		store:        d.Store,
		sub:          d.Store.Subscribe(),
		source:       d.Source,
		refresher:    d.Refresher,
		cache:        d.Cache,
		state:        d.State,
		nowPlaying:   d.NowPlaying,
		stderr:       d.Stderr,
		changed:      d.CatalogChanged,
		stall:        stall,
		log:          log.Named("app"),
		keys:         keys,
		scrub:        scrub.New(d.Store, d.Store.Duration, scrub.NewListeners()),
		songs:        songlist.New(),
		queue:        queuepanel.New(),
		help:         helpbindings.New(keys),
		confirm:      confirm.New(),
		focus:        headerbar.FocusSongs,
		queueVisible: true,
		loading:      true,
	}
	m.songs.SetFocused(true)

	if d.State != nil {
		id, err := d.State.GetSelection()
		if err != nil {
			m.log.Warn("restore selection", zap.Error(err))
		}
		m.restoreID = id
	}

	m.snap = d.Store.Snapshot()
	m.queue.SetQueue(m.snap.Queue, m.snap.QueueIndex)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.source, m.cache, m.log),
		m.WatchPlayback(),
		m.WatchStderr(),
		m.WatchCatalogFile(),
		TickCmd(),
	)
}
