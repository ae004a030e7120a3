package playerbar

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	// Height is the rendered height: top border, content, bottom border.
	Height = 3

	// leftInset is the border plus the horizontal padding.
	leftInset = 2
	separator = "  "
	minBar    = 5
	minTitle  = 8
	maxTitle  = 40
)

// Layout is the horizontal geometry of a rendered player bar, in terminal
// columns relative to the bar's left edge.
type Layout struct {
	StatusWidth int
	TitleWidth  int
	TimeWidth   int
	BarLeft     int
	BarWidth    int
	VolumeWidth int
}

// Compute returns the geometry Render uses for s at width. The bar
// columns feed the scrub handler's bounds.
func Compute(s State, width int) Layout {
	inner := max(width-2*leftInset, 0)
	sepW := lipgloss.Width(separator)

	l := Layout{
		StatusWidth: lipgloss.Width(statusIcon(s)),
		TimeWidth:   max(len(FormatTime(s.Duration)), len("0:00")),
		VolumeWidth: lipgloss.Width(volumeLabel(s)),
	}

	// status  title  pos bar dur  volume
	fixed := l.StatusWidth + sepW + 2*l.TimeWidth + 2 + sepW + l.VolumeWidth
	free := inner - fixed
	l.TitleWidth = min(max(free/3, minTitle), maxTitle)
	if free-l.TitleWidth-sepW < minBar {
		l.TitleWidth = 0
	}

	titleSpan := 0
	if l.TitleWidth > 0 {
		titleSpan = l.TitleWidth + sepW
	}
	l.BarWidth = max(free-titleSpan, 0)
	l.BarLeft = leftInset + l.StatusWidth + sepW + titleSpan + l.TimeWidth + 1
	return l
}
