package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient blends between two colors in HCL space, which keeps the
// transition perceptually even.
type Gradient struct {
	from, to colorful.Color
}

// NewGradient creates a gradient. Non-hex colors blend from neutral gray.
func NewGradient(from, to lipgloss.Color) Gradient {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return Gradient{from: c1, to: c2}
}

// AccentGradient is the theme's primary to secondary gradient.
func AccentGradient() Gradient {
	return NewGradient(T().Primary, T().Secondary)
}

// At returns the color at t, clamped to 0-1.
func (g Gradient) At(t float64) lipgloss.Color {
	t = min(max(t, 0), 1)
	return lipgloss.Color(g.from.BlendHcl(g.to, t).Clamped().Hex())
}

// Text renders text with one color step per grapheme cluster.
func (g Gradient) Text(text string, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(cellStyle(g.At(position(i, len(clusters))), bold).Render(cluster))
	}
	return b.String()
}

// Fill renders n copies of glyph colored by their column in a control
// span cells wide, so a partly filled bar shows the start of the full
// gradient rather than a compressed one.
func (g Gradient) Fill(glyph string, n, span int) string {
	n = min(n, span)
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := range n {
		b.WriteString(cellStyle(g.At(position(i, span)), false).Render(glyph))
	}
	return b.String()
}

func position(i, size int) float64 {
	if size < 2 {
		return 0
	}
	return float64(i) / float64(size-1)
}

func cellStyle(c lipgloss.Color, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(c)
	if bold {
		s = s.Bold(true)
	}
	return s
}

// lipglossToColor converts a hex lipgloss.Color. ANSI palette colors
// become neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
