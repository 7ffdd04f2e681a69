package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// gradientSteps is the number of discrete colors used for level coloring.
const gradientSteps = 16

var (
	levelOnce   sync.Once
	levelStyles []lipgloss.Style
)

// LevelStyle returns a style colored along the meter gradient for a
// normalized level in [0, 1]. Blending is done in HCL space so the
// transition reads as uniform.
func LevelStyle(level float64) lipgloss.Style {
	levelOnce.Do(buildLevelStyles)

	idx := int(level * float64(gradientSteps-1))
	if idx < 0 {
		idx = 0
	}
	if idx > gradientSteps-1 {
		idx = gradientSteps - 1
	}
	return levelStyles[idx]
}

func buildLevelStyles() {
	from := mustParse(string(defaultTheme.MeterLow))
	to := mustParse(string(defaultTheme.MeterHigh))

	levelStyles = make([]lipgloss.Style, gradientSteps)
	for i := range gradientSteps {
		t := float64(i) / float64(gradientSteps-1)
		c := from.BlendHcl(to, t)
		levelStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
}

// ApplyGradient renders text with a horizontal color gradient between
// the two theme accents. Grapheme clusters are colored whole.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	c1 := mustParse(string(from))
	c2 := mustParse(string(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		c := c1.BlendHcl(c2, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// mustParse falls back to neutral gray for non-hex colors.
func mustParse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}
