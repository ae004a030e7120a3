package notify

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

const (
	coverFetchTimeout = 10 * time.Second
	maxCoverBytes     = 8 << 20
)

// CoverCache downloads cover images to disk so notification servers,
// which only accept local paths, can display them.
type CoverCache struct {
	dir    string
	client *http.Client
}

// NewCoverCache creates a cache rooted at dir. An empty dir uses the
// user cache directory.
func NewCoverCache(dir string, client *http.Client) *CoverCache {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "prodverse", "covers")
	}
	if client == nil {
		client = &http.Client{Timeout: coverFetchTimeout}
	}
	return &CoverCache{dir: dir, client: client}
}

// Path returns a local file for the image at url, downloading it on
// first use. Returns empty string if the image cannot be fetched.
func (c *CoverCache) Path(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}
	dest := filepath.Join(c.dir, coverFileName(url))
	if _, err := os.Stat(dest); err == nil {
		return dest
	}
	if err := c.fetch(ctx, url, dest); err != nil {
		return ""
	}
	return dest
}

func (c *CoverCache) fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch cover: unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, "cover-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, io.LimitReader(resp.Body, maxCoverBytes)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

// coverFileName derives a stable file name from the image URL.
func coverFileName(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))

	ext := strings.ToLower(path.Ext(strings.SplitN(url, "?", 2)[0]))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}
	return fmt.Sprintf("%x%s", h.Sum64(), ext)
}
