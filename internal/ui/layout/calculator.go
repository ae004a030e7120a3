// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the queue panel is
// stacked under the catalog instead of beside it.
const NarrowThreshold = 100

// Rect is a screen region in 0-based cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Opts contains the parameters that shape the screen.
type Opts struct {
	HeaderHeight    int
	PlayerBarHeight int // 0 if nothing is loaded
	StatusHeight    int // 0 if there is no status message
	QueueVisible    bool
}

// Frame is the placement of every region for one window size.
type Frame struct {
	Catalog   Rect
	Queue     Rect // zero when hidden
	PlayerBar Rect // zero when hidden
	Narrow    bool
}

// ContentHeight is the height left for the catalog and queue panels.
func ContentHeight(windowHeight int, opts Opts) int {
	return max(windowHeight-opts.HeaderHeight-opts.PlayerBarHeight-opts.StatusHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// CatalogHeight returns 2/3 of the content height when the queue is
// stacked below, the full height otherwise.
func CatalogHeight(contentHeight int, narrowMode, queueVisible bool) int {
	if narrowMode && queueVisible {
		return contentHeight * 2 / 3
	}
	return contentHeight
}

// QueueHeight is the remainder below the catalog in narrow mode, and the
// full content height beside it otherwise.
func QueueHeight(contentHeight int, narrowMode, queueVisible bool) int {
	if narrowMode {
		return contentHeight - CatalogHeight(contentHeight, narrowMode, queueVisible)
	}
	return contentHeight
}

// CatalogWidth returns 2/3 of the window when the queue sits beside it.
func CatalogWidth(windowWidth int, narrowMode, queueVisible bool) int {
	if queueVisible && !narrowMode {
		return windowWidth * 2 / 3
	}
	return windowWidth
}

// QueueWidth returns the width left of the catalog, or the full width when stacked.
func QueueWidth(windowWidth int, narrowMode, queueVisible bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth - CatalogWidth(windowWidth, narrowMode, queueVisible)
}

// PlayerBarRow returns the row of the player bar's top edge, or -1 if
// the bar is hidden. The bar sits above the status line.
func PlayerBarRow(windowHeight, playerBarHeight, statusHeight int) int {
	if playerBarHeight == 0 {
		return -1
	}
	return windowHeight - statusHeight - playerBarHeight
}

// Compute places every region for a window.
func Compute(width, height int, opts Opts) Frame {
	narrow := IsNarrowMode(width)
	content := ContentHeight(height, opts)

	f := Frame{Narrow: narrow}
	f.Catalog = Rect{
		X:      0,
		Y:      opts.HeaderHeight,
		Width:  CatalogWidth(width, narrow, opts.QueueVisible),
		Height: CatalogHeight(content, narrow, opts.QueueVisible),
	}
	if opts.QueueVisible {
		q := Rect{
			Width:  QueueWidth(width, narrow, true),
			Height: QueueHeight(content, narrow, true),
		}
		if narrow {
			q.Y = f.Catalog.Y + f.Catalog.Height
		} else {
			q.X = f.Catalog.Width
			q.Y = f.Catalog.Y
		}
		f.Queue = q
	}
	if row := PlayerBarRow(height, opts.PlayerBarHeight, opts.StatusHeight); row >= 0 {
		f.PlayerBar = Rect{Y: row, Width: width, Height: opts.PlayerBarHeight}
	}
	return f
}
