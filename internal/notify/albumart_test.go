package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePNG = []byte{0x89, 'P', 'N', 'G'}

func coverServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(fakePNG)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCoverCache_DownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write(fakePNG)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewCoverCache(dir, srv.Client())

	first := c.Path(context.Background(), srv.URL+"/cover.png?v=2")
	require.NotEmpty(t, first)
	assert.Equal(t, dir, filepath.Dir(first))
	assert.Equal(t, ".png", filepath.Ext(first))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, fakePNG, data)

	second := c.Path(context.Background(), srv.URL+"/cover.png?v=2")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCoverCache_Failures(t *testing.T) {
	srv := coverServer(t)
	dir := t.TempDir()
	c := NewCoverCache(dir, srv.Client())

	assert.Empty(t, c.Path(context.Background(), ""))
	assert.Empty(t, c.Path(context.Background(), srv.URL+"/missing.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed downloads leave no files")
}

func TestCoverFileName(t *testing.T) {
	tests := []struct {
		url     string
		wantExt string
	}{
		{"https://cdn.example.com/a.jpeg", ".jpeg"},
		{"https://cdn.example.com/a.WEBP?x=1", ".webp"},
		{"https://cdn.example.com/image", ".jpg"},
		{"https://cdn.example.com/a.gif", ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.wantExt, filepath.Ext(coverFileName(tt.url)))
		})
	}
	assert.Equal(t, coverFileName("https://x/a.png"), coverFileName("https://x/a.png"))
	assert.NotEqual(t, coverFileName("https://x/a.png"), coverFileName("https://x/b.png"))
}
