package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Song       string
	Play       string
	Pause      string
	Loading    string
	Stalled    string
	VolumeMute string
	VolumeLow  string
	VolumeMid  string
	VolumeHigh string
	Queued     string
}

var (
	nerdIcons = Icons{
		Song:       "\uf001 ", // nf-fa-music
		Play:       "󰐊",       // nf-md-play
		Pause:      "󰏤",       // nf-md-pause
		Loading:    "󰔟",       // nf-md-timer_sand
		Stalled:    "󰀦",       // nf-md-alert
		VolumeMute: "󰝟",       // nf-md-volume_off
		VolumeLow:  "󰕿",       // nf-md-volume_low
		VolumeMid:  "󰖀",       // nf-md-volume_medium
		VolumeHigh: "󰕾",       // nf-md-volume_high
		Queued:     "󰲸 ",      // nf-md-playlist_music
	}

	unicodeIcons = Icons{
		Song:       "🎵 ",
		Play:       "▶",
		Pause:      "⏸",
		Loading:    "⏳",
		Stalled:    "⚠",
		VolumeMute: "🔇",
		VolumeLow:  "🔈",
		VolumeMid:  "🔉",
		VolumeHigh: "🔊",
		Queued:     "📋 ",
	}

	noneIcons = Icons{
		Song:       "",
		Play:       ">",
		Pause:      "||",
		Loading:    "..",
		Stalled:    "!",
		VolumeMute: "vol:muted",
		VolumeLow:  "vol",
		VolumeMid:  "vol",
		VolumeHigh: "vol",
		Queued:     "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Loading returns the indicator for a source that is still loading.
func Loading() string {
	return current.Loading
}

// Stalled returns the indicator for playback that never started.
func Stalled() string {
	return current.Stalled
}

// Volume returns the volume icon for a level in [0,1].
// Muted or zero shows the mute icon, then low below 0.3, mid below 0.7.
func Volume(level float64, muted bool) string {
	switch {
	case muted || level <= 0:
		return current.VolumeMute
	case level < 0.3:
		return current.VolumeLow
	case level < 0.7:
		return current.VolumeMid
	default:
		return current.VolumeHigh
	}
}

// FormatSong formats a song title with the appropriate icon.
func FormatSong(name string) string {
	return current.Song + name
}

// FormatQueued formats a queue entry with the appropriate icon.
func FormatQueued(name string) string {
	return current.Queued + name
}
