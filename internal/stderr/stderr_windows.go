//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio backends don't produce the same stderr noise as ALSA.
package stderr

import "go.uber.org/zap"

// Capture is a no-op on Windows.
type Capture struct {
	Messages <-chan string
}

// Start is a no-op on Windows.
func Start(_ *zap.Logger) (*Capture, error) {
	return &Capture{Messages: make(chan string)}, nil
}

// Stop is a no-op on Windows.
func (c *Capture) Stop() {}
