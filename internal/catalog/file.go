package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// reloadDebounce groups the burst of events editors emit on save.
const reloadDebounce = 200 * time.Millisecond

// FileSource reads the catalog from a TOML file of [[songs]] tables.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the TOML file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type fileCatalog struct {
	Songs []Song `koanf:"songs"`
}

// Songs parses the file. Entries without an audio URL are skipped.
func (f *FileSource) Songs(_ context.Context) ([]Song, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(f.path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", f.path, err)
	}
	var cat fileCatalog
	if err := k.Unmarshal("", &cat); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", f.path, err)
	}

	songs := cat.Songs[:0]
	for _, s := range cat.Songs {
		if s.AudioURL == "" && s.StreamURL == "" {
			continue
		}
		songs = append(songs, s)
	}
	return songs, nil
}

// Watch calls onChange after the file is written or replaced, until ctx
// is done. The directory is watched so atomic saves are seen.
func (f *FileSource) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", f.path, err)
	}

	go func() {
		defer watcher.Close()
		name := filepath.Clean(f.path)

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					pending = time.After(reloadDebounce)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-pending:
				pending = nil
				onChange()
			}
		}
	}()
	return nil
}
