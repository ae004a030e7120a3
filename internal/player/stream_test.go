package player

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtFromContentType(t *testing.T) {
	tests := []struct {
		ct   string
		want string
	}{
		{"audio/mpeg", extMP3},
		{"audio/flac", extFLAC},
		{"audio/ogg; codecs=vorbis", extOGG},
		{"audio/x-wav", extWAV},
		{"text/html", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extFromContentType(tt.ct), tt.ct)
	}
}

func TestOpenSource_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "audio/flac")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	t.Run("extension from path", func(t *testing.T) {
		rc, ext, err := openSource(context.Background(), srv.Client(), srv.URL+"/song.mp3")
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, extMP3, ext)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
		_, isSeeker := rc.(io.Seeker)
		assert.True(t, isSeeker, "remote sources must be seekable")
	})

	t.Run("extension from content type", func(t *testing.T) {
		rc, ext, err := openSource(context.Background(), srv.Client(), srv.URL+"/stream")
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, extFLAC, ext)
	})

	t.Run("bad status", func(t *testing.T) {
		_, _, err := openSource(context.Background(), srv.Client(), srv.URL+"/missing")
		assert.Error(t, err)
	})
}

func TestOpenSource_LocalFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Song.WAV")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	rc, ext, err := openSource(context.Background(), http.DefaultClient, p)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, extWAV, ext)

	rc, ext, err = openSource(context.Background(), http.DefaultClient, "file://"+p)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, extWAV, ext)

	_, _, err = openSource(context.Background(), http.DefaultClient, filepath.Join(t.TempDir(), "nope.mp3"))
	assert.Error(t, err)
}
