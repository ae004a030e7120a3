package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"

	// maxSourceBytes bounds in-memory buffering of remote sources.
	maxSourceBytes = 256 << 20
)

// memFile is a seekable in-memory source. beep decoders only support
// seeking when the underlying reader is an io.Seeker.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// openSource opens src for decoding and returns the format extension.
// Remote sources are buffered fully so the decoders can seek.
func openSource(ctx context.Context, client *http.Client, src string) (io.ReadCloser, string, error) {
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		p := src
		if err == nil && u.Scheme == "file" {
			p = u.Path
		}
		f, err := os.Open(p)
		if err != nil {
			return nil, "", err
		}
		return f, strings.ToLower(filepath.Ext(p)), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch source: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read source: %w", err)
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		ext = extFromContentType(resp.Header.Get("Content-Type"))
	}
	return memFile{bytes.NewReader(data)}, ext, nil
}

func extFromContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	switch mt {
	case "audio/flac", "audio/x-flac":
		return extFLAC
	case "audio/ogg", "audio/vorbis":
		return extOGG
	case "audio/wav", "audio/x-wav", "audio/wave":
		return extWAV
	case "audio/mpeg", "audio/mp3":
		return extMP3
	default:
		return ""
	}
}

// decode picks a beep decoder by extension. Unknown extensions are tried
// as MP3, which is what the generation service serves.
func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extFLAC:
		return flac.Decode(rc)
	case extOGG:
		return vorbis.Decode(rc)
	case extWAV:
		return wav.Decode(rc)
	default:
		return mp3.Decode(rc)
	}
}
