//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestVolume(t *testing.T) {
	Init("unicode")
	defer Init("none")

	tests := []struct {
		name  string
		level float64
		muted bool
		want  string
	}{
		{"muted keeps level", 0.9, true, "🔇"},
		{"zero", 0, false, "🔇"},
		{"low", 0.1, false, "🔈"},
		{"just below mid", 0.29, false, "🔈"},
		{"mid boundary", 0.3, false, "🔉"},
		{"mid", 0.5, false, "🔉"},
		{"high boundary", 0.7, false, "🔊"},
		{"full", 1, false, "🔊"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Volume(tt.level, tt.muted); got != tt.want {
				t.Errorf("Volume(%v, %v) = %q, want %q", tt.level, tt.muted, got, tt.want)
			}
		})
	}
}

func TestFormatSong(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"none", "Neon Rain"},
		{"nerd", "\uf001 Neon Rain"},
		{"unicode", "🎵 Neon Rain"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := FormatSong("Neon Rain"); got != tt.expected {
				t.Errorf("FormatSong() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlaybackIcons(t *testing.T) {
	Init("none")
	if Play() != ">" || Pause() != "||" || Loading() != ".." || Stalled() != "!" {
		t.Errorf("unexpected none icons: %q %q %q %q", Play(), Pause(), Loading(), Stalled())
	}
}
