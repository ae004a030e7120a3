package stderr

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

const messageBuffer = 100

// forward logs each non-blank line read from r and offers it on out,
// dropping lines when out is full. out is closed when r is exhausted.
func forward(r io.ReadCloser, log *zap.Logger, out chan<- string) {
	defer close(out)
	defer r.Close()
	if log == nil {
		log = zap.NewNop()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn("native stderr", zap.String("line", line))
		select {
		case out <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}
