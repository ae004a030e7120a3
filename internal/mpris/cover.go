//go:build linux

package mpris

import (
	"net/url"
	"path/filepath"
)

// artURL converts a track image location into an MPRIS art URL.
// Remote URLs pass through; local paths become file:// URLs.
func artURL(image string) string {
	if image == "" {
		return ""
	}
	u, err := url.Parse(image)
	if err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return image
	}
	abs, err := filepath.Abs(image)
	if err != nil {
		return ""
	}
	return (&url.URL{Scheme: "file", Path: abs}).String()
}
