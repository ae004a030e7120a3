package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhowden/tag"
	"go.uber.org/zap"
)

// audioExts are the formats the player can decode.
var audioExts = []string{".mp3", ".flac", ".ogg", ".wav"}

// DirSource lists audio files under a directory. Titles and artists come
// from the file tags when present. The path is the song ID.
type DirSource struct {
	root string
	log  *zap.Logger
}

// NewDirSource creates a source for the directory at root.
func NewDirSource(root string, log *zap.Logger) *DirSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirSource{root: root, log: log.Named("catalog")}
}

// Songs walks the directory in lexical order.
func (d *DirSource) Songs(ctx context.Context) ([]Song, error) {
	var songs []Song
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !isAudio(path) {
			return nil
		}
		songs = append(songs, d.song(path, entry))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (d *DirSource) song(path string, entry fs.DirEntry) Song {
	s := Song{
		ID:       path,
		Title:    strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
		AudioURL: path,
	}
	if info, err := entry.Info(); err == nil {
		s.CreatedAt = info.ModTime()
	}

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		d.log.Debug("no tags", zap.String("path", path), zap.Error(err))
		return s
	}
	if m.Title() != "" {
		s.Title = m.Title()
	}
	s.Artist = m.Artist()
	s.Style = m.Genre()
	return s
}

func isAudio(path string) bool {
	return slices.Contains(audioExts, strings.ToLower(filepath.Ext(path)))
}
