package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boostlegends/Prodverse/internal/app"
	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/config"
	"github.com/boostlegends/Prodverse/internal/icons"
	"github.com/boostlegends/Prodverse/internal/logger"
	"github.com/boostlegends/Prodverse/internal/mpris"
	"github.com/boostlegends/Prodverse/internal/notify"
	"github.com/boostlegends/Prodverse/internal/playback"
	"github.com/boostlegends/Prodverse/internal/player"
	"github.com/boostlegends/Prodverse/internal/playlist"
	"github.com/boostlegends/Prodverse/internal/state"
	"github.com/boostlegends/Prodverse/internal/stderr"
)

type flags struct {
	configPath string
	url        string
	file       string
	dir        string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "prodverse",
		Short:         "Play your generated songs from the terminal",
		Version:       appVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default: XDG config dir, then ./config.toml)")
	cmd.Flags().StringVar(&f.url, "url", "", "songs API base URL")
	cmd.Flags().StringVar(&f.file, "file", "", "TOML catalog file")
	cmd.Flags().StringVar(&f.dir, "dir", "", "directory of audio files")
	cmd.MarkFlagsMutuallyExclusive("url", "file", "dir")
	return cmd
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "dev"
	}
	return bi.Main.Version
}

func loadConfig(f flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFrom(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.url != "" || f.file != "" || f.dir != "" {
		cfg.Catalog = config.CatalogConfig{URL: f.url, File: f.file, Dir: f.dir}
	}
	return cfg, nil
}

// catalogSource picks the first configured source: url, then file, then dir.
type catalogSource struct {
	source    catalog.Source
	refresher catalog.Refresher
	file      *catalog.FileSource
}

var errNoCatalog = errors.New("no catalog configured: set [catalog] url, file or dir, or pass --url, --file or --dir")

func newCatalogSource(cfg config.CatalogConfig, log *zap.Logger) (catalogSource, error) {
	switch {
	case cfg.URL != "":
		h := catalog.NewHTTPSource(cfg.URL, nil, log)
		return catalogSource{source: h, refresher: h}, nil
	case cfg.File != "":
		fs := catalog.NewFileSource(cfg.File)
		return catalogSource{source: fs, file: fs}, nil
	case cfg.Dir != "":
		return catalogSource{source: catalog.NewDirSource(cfg.Dir, log)}, nil
	}
	return catalogSource{}, errNoCatalog
}

func logConfig(lc config.LogConfig) logger.Config {
	return logger.Config{
		Level:      lc.Level,
		Path:       lc.Path,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
	}
}

func run(f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logConfig(cfg.GetLogConfig()))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()
	log.Info("starting", zap.String("version", appVersion()))

	icons.Init(cfg.IconStyle())

	src, err := newCatalogSource(cfg.Catalog, log)
	if err != nil {
		return err
	}

	// Capture stderr before the audio device is opened so library noise
	// goes to the log instead of over the TUI.
	capture, err := stderr.Start(log)
	if err != nil {
		log.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer capture.Stop()

	stateMgr, err := state.Open(cfg.State.DBPath)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	res := player.NewBeepResource(log, player.WithTickInterval(cfg.TickInterval()))
	engine := player.NewEngine(res, log)
	defer engine.Close()

	store := playback.New(engine, playlist.NewQueue(),
		playback.WithLogger(log),
		playback.WithVolumeStore(stateMgr),
		playback.WithDefaultVolume(cfg.DefaultVolume()),
	)
	store.Init()
	defer store.Close()

	if adapter, err := mpris.New(store, log); err != nil {
		log.Warn("mpris unavailable", zap.Error(err))
	} else {
		defer adapter.Close()
	}

	var nowPlaying *notify.NowPlaying
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			log.Warn("notifications unavailable", zap.Error(err))
		} else {
			nowPlaying = notify.NewNowPlaying(n, notify.NewCoverCache("", nil), log)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changed chan struct{}
	if src.file != nil {
		changed = make(chan struct{}, 1)
		err := src.file.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		if err != nil {
			log.Warn("catalog file not watched", zap.Error(err))
			changed = nil
		}
	}

	var stderrLines <-chan string
	if capture != nil {
		stderrLines = capture.Messages
	}

	model := app.New(app.Deps{
		Store:          store,
		Source:         src.source,
		Refresher:      src.refresher,
		Cache:          stateMgr,
		State:          stateMgr,
		NowPlaying:     nowPlaying,
		Stderr:         stderrLines,
		CatalogChanged: changed,
		StallThreshold: cfg.StallThreshold(),
		Log:            log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("exiting")
	return nil
}
