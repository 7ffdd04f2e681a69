package visualizerpanel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/muker/internal/visualizer"
)

func TestView_ZeroSize(t *testing.T) {
	m := New()
	if got := m.View(); got != "" {
		t.Errorf("View() with zero size = %q, want empty", got)
	}
}

func TestView_NoFrame_Blank(t *testing.T) {
	m := New()
	m.SetSize(20, 6)

	out := m.View()
	if out == "" {
		t.Fatal("View() returned empty for sized panel")
	}
	if strings.Contains(out, "█") {
		t.Error("blank panel should contain no bar glyphs")
	}
}

func TestView_SpectrumFrame(t *testing.T) {
	m := New()
	m.SetSize(20, 6)

	bins := make([]float64, m.InnerWidth())
	for i := range bins {
		bins[i] = 1.0
	}
	m.SetFrame(visualizer.Frame{Style: visualizer.Spectrum, Bins: bins})

	out := m.View()
	if !strings.Contains(out, "█") {
		t.Error("full-level spectrum should draw full blocks")
	}
}

func TestRenderBars_BarWidthAddsGaps(t *testing.T) {
	out := renderBars([]float64{1, 1, 1}, 6, 2, 2)
	rows := strings.Split(out, "\n")
	if got := rows[len(rows)-1]; got != "█ █ █" {
		t.Errorf("bottom row = %q, want bars separated by gap columns", got)
	}

	dense := renderBars([]float64{1, 1, 1}, 3, 2, 1)
	denseRows := strings.Split(dense, "\n")
	if got := denseRows[len(denseRows)-1]; got != "███" {
		t.Errorf("bottom row = %q, want a dense run of blocks", got)
	}
}

func TestView_BarsFrame(t *testing.T) {
	m := New()
	m.SetSize(20, 6)

	bins := make([]float64, m.InnerWidth()/2)
	for i := range bins {
		bins[i] = 1.0
	}
	m.SetFrame(visualizer.Frame{Style: visualizer.Bars, Bins: bins})

	out := m.View()
	if !strings.Contains(out, "█") {
		t.Error("full-level bars should draw full blocks")
	}
}

func TestView_LineCount(t *testing.T) {
	m := New()
	m.SetSize(30, 8)
	m.SetFrame(visualizer.Frame{Style: visualizer.Spectrum, Bins: []float64{0.5, 0.9}})

	out := m.View()
	if got := lipgloss.Height(out); got != 8 {
		t.Errorf("View() height = %d, want 8", got)
	}
}

func TestView_VUFrame(t *testing.T) {
	m := New()
	m.SetSize(40, 6)
	m.SetFrame(visualizer.Frame{Style: visualizer.VU, Left: 0.5, Right: 1.0})

	out := m.View()
	if !strings.Contains(out, "L ") || !strings.Contains(out, "R ") {
		t.Error("VU view should label both channels")
	}
	if !strings.Contains(out, "100%") {
		t.Error("VU view should show the right channel at 100%")
	}
	if !strings.Contains(out, " 50%") {
		t.Error("VU view should show the left channel at 50%")
	}
}

func TestView_WaveformFrame(t *testing.T) {
	m := New()
	m.SetSize(20, 7)

	wave := make([]float64, m.InnerWidth())
	for i := range wave {
		wave[i] = 1.0
	}
	m.SetFrame(visualizer.Frame{Style: visualizer.Waveform, Wave: wave})

	out := m.View()
	if !strings.Contains(out, "█") {
		t.Error("full-amplitude waveform should draw blocks")
	}
}

func TestReset_Blanks(t *testing.T) {
	m := New()
	m.SetSize(20, 6)
	m.SetFrame(visualizer.Frame{Style: visualizer.Spectrum, Bins: []float64{1, 1, 1}})
	m.Reset()

	out := m.View()
	if strings.Contains(out, "█") {
		t.Error("Reset() should blank the panel")
	}
}
