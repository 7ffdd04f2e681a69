// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the application.
type Theme struct {
	Primary   lipgloss.Color // accent, focused borders, playing marker
	Secondary lipgloss.Color

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Visualizer gradient endpoints (quiet to loud)
	MeterLow  lipgloss.Color
	MeterHigh lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dcfff"),
	Secondary: lipgloss.Color("#e0af68"),

	FgBase:   lipgloss.Color("#c0caf5"),
	FgMuted:  lipgloss.Color("#787c99"),
	FgSubtle: lipgloss.Color("#565f89"),

	BgCursor: lipgloss.Color("#2e3350"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7dcfff"),

	MeterLow:  lipgloss.Color("#2ac3de"),
	MeterHigh: lipgloss.Color("#f7768e"),

	Error: lipgloss.Color("#f7768e"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
