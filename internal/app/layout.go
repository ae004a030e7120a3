package app

import (
	"github.com/boostlegends/Prodverse/internal/scrub"
	"github.com/boostlegends/Prodverse/internal/ui/headerbar"
	"github.com/boostlegends/Prodverse/internal/ui/layout"
	"github.com/boostlegends/Prodverse/internal/ui/playerbar"
)

// playerState builds the player bar state from the last snapshot.
func (m Model) playerState() playerbar.State {
	return playerbar.NewState(m.snap, m.scrub, m.store.Stalled(m.stall))
}

func (m Model) statusHeight() int {
	if m.errMsg == "" {
		return 0
	}
	return 1
}

// resize places the panels and updates the progress bar's input bounds.
func (m *Model) resize() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	ps := m.playerState()
	barHeight := 0
	if ps.Visible() {
		barHeight = playerbar.Height
	}

	opts := layout.Opts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: barHeight,
		StatusHeight:    m.statusHeight(),
		QueueVisible:    m.queueVisible,
	}
	m.frame = layout.Compute(m.Width, m.Height, opts)

	// Overlays replace the panels.
	content := layout.ContentHeight(m.Height, opts)
	m.help.SetSize(m.Width, content)
	m.confirm.SetSize(m.Width, content)

	c := m.frame.Catalog
	m.songs.SetSize(c.Width, c.Height)
	m.songs.SetOrigin(c.X, c.Y)
	q := m.frame.Queue
	m.queue.SetSize(q.Width, q.Height)
	m.queue.SetOrigin(q.X, q.Y)

	if barHeight == 0 {
		m.scrub.SetBounds(scrub.Bounds{})
		return
	}
	l := playerbar.Compute(ps, m.Width)
	// The first bar cell maps to 0% and the last to 100%.
	m.scrub.SetBounds(scrub.Bounds{
		Left:  float64(m.frame.PlayerBar.X + l.BarLeft),
		Width: float64(max(l.BarWidth-1, 1)),
	})
}

// overProgressBar reports whether a screen cell is on the progress bar.
func (m Model) overProgressBar(x, y int) bool {
	bar := m.frame.PlayerBar
	if bar.Height == 0 || y != bar.Y+1 {
		return false
	}
	l := playerbar.Compute(m.playerState(), m.Width)
	left := bar.X + l.BarLeft
	return x >= left && x < left+l.BarWidth
}

// overPlayerBar reports whether a screen cell is inside the player bar.
func (m Model) overPlayerBar(y int) bool {
	bar := m.frame.PlayerBar
	return bar.Height > 0 && y >= bar.Y && y < bar.Y+bar.Height
}
