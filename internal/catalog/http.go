package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const httpTimeout = 30 * time.Second

// HTTPSource reads the catalog from the songs API.
type HTTPSource struct {
	base   string
	client *http.Client
	log    *zap.Logger
}

// NewHTTPSource creates a source for the API at base, e.g.
// "https://example.com". client may be nil.
func NewHTTPSource(base string, client *http.Client, log *zap.Logger) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPSource{
		base:   strings.TrimRight(base, "/"),
		client: client,
		log:    log.Named("catalog"),
	}
}

type songsResponse struct {
	Success bool   `json:"success"`
	Songs   []Song `json:"songs"`
	Error   string `json:"error"`
}

type refreshResponse struct {
	Success   bool   `json:"success"`
	AudioURL  string `json:"audioUrl"`
	StreamURL string `json:"streamUrl"`
	ImageURL  string `json:"imageUrl"`
	Error     string `json:"error"`
}

// Songs fetches the saved songs, newest first.
func (h *HTTPSource) Songs(ctx context.Context) ([]Song, error) {
	var resp songsResponse
	if err := h.get(ctx, "/api/songs", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.Error, "fetch songs failed")
	}
	h.log.Debug("catalog fetched", zap.Int("songs", len(resp.Songs)))
	return resp.Songs, nil
}

// Refresh asks the service for fresh media URLs for s. The returned song
// keeps the ID, so replaying it replaces the queued entry.
func (h *HTTPSource) Refresh(ctx context.Context, s Song) (Song, error) {
	if s.TaskID == "" {
		return s, errors.New("refresh: song has no task id")
	}
	q := url.Values{"taskId": {s.TaskID}}
	if s.SunoID != "" {
		q.Set("sunoId", s.SunoID)
	}

	var resp refreshResponse
	if err := h.get(ctx, "/api/songs/refresh", q, &resp); err != nil {
		return s, err
	}
	if !resp.Success {
		return s, apiError(resp.Error, "refresh failed")
	}

	s.AudioURL = resp.AudioURL
	s.StreamURL = resp.StreamURL
	if s.StreamURL == "" {
		s.StreamURL = resp.AudioURL
	}
	if resp.ImageURL != "" {
		s.ImageURL = resp.ImageURL
	}
	h.log.Info("song urls refreshed", zap.String("id", s.ID))
	return s, nil
}

// get decodes the JSON body of GET path into out. Error statuses still
// carry a JSON body with the service's message, so they are decoded too.
func (h *HTTPSource) get(ctx context.Context, path string, q url.Values, out any) error {
	u := h.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("request %s: unexpected status %s", path, resp.Status)
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func apiError(msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	return errors.New(msg)
}
