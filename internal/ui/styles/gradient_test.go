package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient_AtEndpoints(t *testing.T) {
	g := NewGradient(lipgloss.Color("#a0522d"), lipgloss.Color("#4682b4"))

	tests := []struct {
		name string
		t    float64
		want string
	}{
		{"start", 0, "#a0522d"},
		{"end", 1, "#4682b4"},
		{"below range clamps", -2, "#a0522d"},
		{"above range clamps", 3, "#4682b4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorful.Hex(string(g.At(tt.t)))
			require.NoError(t, err)
			want, _ := colorful.Hex(tt.want)
			assert.Less(t, got.DistanceLab(want), 0.01)
		})
	}
}

func TestGradient_TextKeepsWidth(t *testing.T) {
	g := AccentGradient()

	assert.Equal(t, 9, lipgloss.Width(g.Text("Prodverse", true)))
	assert.Equal(t, 1, lipgloss.Width(g.Text("P", false)))
	assert.Empty(t, g.Text("", true))
}

func TestGradient_Fill(t *testing.T) {
	g := AccentGradient()

	tests := []struct {
		name      string
		n, span   int
		wantWidth int
	}{
		{"partial", 3, 10, 3},
		{"full", 10, 10, 10},
		{"clamped to span", 12, 10, 10},
		{"empty", 0, 10, 0},
		{"negative", -1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWidth, lipgloss.Width(g.Fill("━", tt.n, tt.span)))
		})
	}
}

func TestLipglossToColor_NonHexFallsBack(t *testing.T) {
	c := lipglossToColor(lipgloss.Color("240"))
	r, g, b, _ := c.RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestPanelStyle_FocusChangesBorder(t *testing.T) {
	assert.Equal(t, T().BorderFocus, PanelStyle(true).GetBorderTopForeground())
	assert.Equal(t, T().Border, PanelStyle(false).GetBorderTopForeground())
}
