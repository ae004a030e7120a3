//go:build !windows

// Package stderr captures output that C audio libraries (ALSA via the
// speaker backend) write straight to file descriptor 2, so it lands in
// the log instead of on top of the TUI.
package stderr

import (
	"os"
	"syscall"

	"go.uber.org/zap"
)

// Capture redirects fd 2 into a pipe until Stop is called.
type Capture struct {
	// Messages receives captured lines for display in the UI.
	// It is closed once the pipe is drained after Stop.
	Messages <-chan string

	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
}

// Start begins capturing stderr. Every captured line is logged at warn
// level and offered on Messages. Must be called before the speaker is
// initialized. On error the program can continue without capture.
func Start(log *zap.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	msgs := make(chan string, messageBuffer)
	c := &Capture{
		Messages:   msgs,
		origStderr: orig,
		pipeRead:   r,
		pipeWrite:  w,
	}
	go forward(r, log, msgs)
	return c, nil
}

// Stop restores the original stderr. Safe on a nil Capture.
func (c *Capture) Stop() {
	if c == nil || c.pipeWrite == nil {
		return
	}

	_ = syscall.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(c.origStderr)

	c.pipeWrite.Close()
	c.pipeWrite = nil
}
