// Package visualizerpanel draws analyzer frames as terminal graphics.
package visualizerpanel

import (
	"fmt"
	"strings"

	"github.com/llehouerou/muker/internal/ui"
	"github.com/llehouerou/muker/internal/ui/render"
	"github.com/llehouerou/muker/internal/ui/styles"
	"github.com/llehouerou/muker/internal/visualizer"
)

// Block elements for bar height, quietest to loudest.
var barBlocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Model holds the latest frame and renders it on demand.
type Model struct {
	ui.Base
	frame    visualizer.Frame
	hasFrame bool
}

// New creates an empty visualizer panel.
func New() Model {
	return Model{}
}

// SetFrame stores the latest analyzer frame for the next View call.
func (m *Model) SetFrame(f visualizer.Frame) {
	m.frame = f
	m.hasFrame = true
}

// Reset clears the stored frame, blanking the panel.
func (m *Model) Reset() {
	m.frame = visualizer.Frame{}
	m.hasFrame = false
}

// InnerWidth returns the display columns available for frame data.
// The scheduler's frame width should track this value.
func (m Model) InnerWidth() int {
	return max(m.Width()-ui.BorderHeight, 0)
}

// View renders the panel for the current size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	innerHeight := max(m.Height()-ui.BorderHeight, 1)

	var content string
	switch {
	case !m.hasFrame:
		content = blankLines(innerWidth, innerHeight)
	case m.frame.Style == visualizer.Waveform:
		content = renderWaveform(m.frame.Wave, innerWidth, innerHeight)
	case m.frame.Style == visualizer.VU:
		content = renderVU(m.frame.Left, m.frame.Right, innerWidth, innerHeight)
	case m.frame.Style == visualizer.Bars:
		content = renderBars(m.frame.Bins, innerWidth, innerHeight, 2)
	default:
		content = renderBars(m.frame.Bins, innerWidth, innerHeight, 1)
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderBars draws the bins stacked over innerHeight rows. Each row
// shows the slice of the bar that falls in its band, so a bin at level
// 1.0 fills the full column height. barWidth 1 gives the dense
// spectrum look; barWidth 2 draws discrete bars separated by a gap.
func renderBars(bins []float64, width, height, barWidth int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	rows := make([]string, height)
	for row := range height {
		var b strings.Builder
		// Row 0 is the top of the panel.
		rowTop := float64(height-row) / float64(height)
		rowBottom := float64(height-row-1) / float64(height)

		for col := 0; col < width; col++ {
			if barWidth > 1 && col%barWidth != 0 {
				b.WriteString(" ")
				continue
			}
			var level float64
			if band := col / barWidth; band < len(bins) {
				level = bins[band]
			}
			switch {
			case level >= rowTop:
				b.WriteString(styles.LevelStyle(level).Render("█"))
			case level > rowBottom:
				frac := (level - rowBottom) * float64(height)
				idx := int(frac * float64(len(barBlocks)-1))
				idx = min(max(idx, 0), len(barBlocks)-1)
				b.WriteString(styles.LevelStyle(level).Render(barBlocks[idx]))
			default:
				b.WriteString(" ")
			}
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// renderWaveform draws a centered amplitude trace, one column per
// sample, mirrored around the middle row.
func renderWaveform(wave []float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	mid := height / 2
	rows := make([][]string, height)
	for i := range rows {
		rows[i] = make([]string, width)
		for j := range rows[i] {
			rows[i][j] = " "
		}
	}

	halfSpan := float64(max(mid, 1))
	for col := range width {
		var amp float64
		if col < len(wave) {
			amp = wave[col]
		}
		extent := int(abs(amp) * halfSpan)
		mark := styles.LevelStyle(abs(amp)).Render("█")

		rows[mid][col] = mark
		for d := 1; d <= extent; d++ {
			if mid-d >= 0 {
				rows[mid-d][col] = mark
			}
			if mid+d < height {
				rows[mid+d][col] = mark
			}
		}
	}

	lines := make([]string, height)
	for i := range rows {
		lines[i] = strings.Join(rows[i], "")
	}
	return strings.Join(lines, "\n")
}

// renderVU draws two horizontal meters with peak labels.
func renderVU(left, right float64, width, height int) string {
	lines := make([]string, 0, height)

	// Center the two meters vertically.
	pad := max((height-2)/2, 0)
	for range pad {
		lines = append(lines, render.EmptyLine(width))
	}

	lines = append(lines, renderMeter("L", left, width))
	if len(lines) < height {
		lines = append(lines, renderMeter("R", right, width))
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines[:height], "\n")
}

func renderMeter(label string, level float64, width int) string {
	level = min(max(level, 0), 1)
	pct := fmt.Sprintf("%3d%%", int(level*100))

	// "L ▮▮▮▯▯  42%"
	barWidth := width - len(label) - len(pct) - 3
	if barWidth < ui.MinProgressBarWidth {
		return render.TruncateAndPad(label+" "+pct, width)
	}

	filled := min(int(level*float64(barWidth)), barWidth)
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" ")
	for i := range barWidth {
		if i < filled {
			frac := float64(i) / float64(max(barWidth-1, 1))
			b.WriteString(styles.LevelStyle(frac).Render("▮"))
		} else {
			b.WriteString(styles.T().S().Subtle.Render("▯"))
		}
	}
	b.WriteString("  ")
	b.WriteString(styles.T().S().Muted.Render(pct))
	return b.String()
}

func blankLines(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = render.EmptyLine(width)
	}
	return strings.Join(lines, "\n")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
