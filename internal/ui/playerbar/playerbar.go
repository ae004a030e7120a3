// Package playerbar renders the now-playing bar: status, title, a
// seekable progress bar and the volume indicator.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/icons"
	"github.com/boostlegends/Prodverse/internal/playback"
	"github.com/boostlegends/Prodverse/internal/ui/render"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Status        playback.State
	PlayRequested bool
	Stalled       bool

	Title  string
	Artist string

	// Position is what the bar shows: the held drag position while
	// scrubbing, otherwise the playback time.
	Position time.Duration
	Duration time.Duration
	Percent  float64 // 0-100

	Hovering  bool
	HoverTime time.Duration

	Volume float64
	Muted  bool
}

// Scrubber is the part of the scrub handler the bar reads.
type Scrubber interface {
	DisplayPercent(current time.Duration) float64
	DisplayTime(current time.Duration) time.Duration
	HoverTime() (time.Duration, bool)
}

// NewState builds a State from a store snapshot. sc may be nil.
func NewState(snap playback.Snapshot, sc Scrubber, stalled bool) State {
	s := State{
		Status:        snap.State,
		PlayRequested: snap.PlayRequested,
		Stalled:       stalled,
		Position:      snap.CurrentTime,
		Duration:      snap.Duration,
		Percent:       snap.Progress() * 100,
		Volume:        snap.Volume,
		Muted:         snap.IsMuted,
	}
	if t := snap.CurrentTrack; t != nil {
		s.Title = t.Title
		s.Artist = t.DisplayArtist()
	}
	if sc != nil {
		s.Percent = sc.DisplayPercent(snap.CurrentTime)
		s.Position = sc.DisplayTime(snap.CurrentTime)
		s.HoverTime, s.Hovering = sc.HoverTime()
	}
	return s
}

// Visible reports whether there is a track to show.
func (s State) Visible() bool {
	return s.Status.HasTrack()
}

// Render returns the player bar for the given width, or empty string
// when nothing is loaded.
func Render(s State, width int) string {
	if !s.Visible() {
		return ""
	}
	l := Compute(s, width)

	var content strings.Builder
	if s.Stalled {
		content.WriteString(stalledStyle().Render(statusIcon(s)))
	} else {
		content.WriteString(statusIcon(s))
	}
	content.WriteString(separator)

	if l.TitleWidth > 0 {
		content.WriteString(render.Pad(titleBlock(s, l.TitleWidth), l.TitleWidth))
		content.WriteString(separator)
	}

	content.WriteString(timeStyle().Render(render.PadLeft(FormatTime(s.Position), l.TimeWidth)))
	content.WriteString(" ")
	content.WriteString(progressBar(s.Percent, l.BarWidth))
	content.WriteString(" ")
	content.WriteString(timeStyle().Render(render.Pad(FormatTime(s.Duration), l.TimeWidth)))
	content.WriteString(separator)
	content.WriteString(timeStyle().Render(volumeLabel(s)))

	return barStyle().Padding(0, 1).Width(max(width-2, 0)).Render(content.String())
}

// titleBlock shows the hover tooltip in place of the title while the
// pointer is over the bar.
func titleBlock(s State, width int) string {
	if s.Hovering {
		return tooltipStyle().Render(render.Truncate("seek to "+FormatTime(s.HoverTime), width))
	}
	if s.Stalled {
		return stalledStyle().Render(render.Truncate("waiting for audio...", width))
	}

	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	titleW := lipgloss.Width(render.Sanitize(title))
	if titleW >= width || s.Artist == "" {
		return titleStyle().Render(render.Truncate(title, width))
	}
	rest := width - titleW - 3
	if rest < 4 {
		return titleStyle().Render(render.Sanitize(title))
	}
	return titleStyle().Render(render.Sanitize(title)) + " · " + artistStyle().Render(render.Truncate(s.Artist, rest))
}

func progressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(max(int(float64(width)*percent/100), 0), width)
	return styles.AccentGradient().Fill("━", filled, width) +
		progressBarEmpty().Render(strings.Repeat("─", width-filled))
}

func statusIcon(s State) string {
	switch {
	case s.Stalled:
		return icons.Stalled()
	case s.Status == playback.StatePlaying:
		return icons.Play()
	case s.Status == playback.StateLoading && s.PlayRequested:
		return icons.Loading()
	default:
		return icons.Pause()
	}
}

func volumeLabel(s State) string {
	return fmt.Sprintf("%s %3d%%", icons.Volume(s.Volume, s.Muted), int(s.Volume*100+0.5))
}
