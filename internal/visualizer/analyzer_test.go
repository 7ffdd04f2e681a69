package visualizer

import (
	"math"
	"testing"
)

func silence(n int) [][2]float64 {
	return make([][2]float64, n)
}

func sine(n int, freq, sampleRate float64) [][2]float64 {
	out := make([][2]float64, n)
	for i := range n {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		out[i] = [2]float64{v, v}
	}
	return out
}

func TestAnalyzer_Silence_AllZero(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	spec := a.Analyze(Spectrum, silence(1024), 80)
	for i, v := range spec.Bins {
		if v != 0 {
			t.Errorf("spectrum bin %d = %v on silence, want 0", i, v)
		}
	}

	wave := a.Analyze(Waveform, silence(1024), 80)
	for i, v := range wave.Wave {
		if v != 0 {
			t.Errorf("waveform col %d = %v on silence, want 0", i, v)
		}
	}

	vu := a.Analyze(VU, silence(1024), 80)
	if vu.Left != 0 || vu.Right != 0 {
		t.Errorf("VU = (%v, %v) on silence, want (0, 0)", vu.Left, vu.Right)
	}
}

func TestAnalyzer_EmptySnapshot_AllZero(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	frame := a.Analyze(Spectrum, nil, 80)
	if len(frame.Bins) == 0 {
		t.Fatal("got no bins")
	}
	for i, v := range frame.Bins {
		if v != 0 {
			t.Errorf("bin %d = %v with no audio, want 0", i, v)
		}
	}
}

func TestAnalyzer_Spectrum_BandsFollowWidth(t *testing.T) {
	a := NewAnalyzer(1024, 32, 44100)

	tests := []struct {
		width int
		want  int
	}{
		{10, 10},
		{64, 64},
		{200, 64}, // capped
		{0, 32},   // unknown width falls back to the default
	}
	for _, tt := range tests {
		frame := a.Analyze(Spectrum, silence(1024), tt.width)
		if len(frame.Bins) != tt.want {
			t.Errorf("width %d: got %d bins, want %d", tt.width, len(frame.Bins), tt.want)
		}
	}
}

func TestAnalyzer_Bars_HalfWidthBands(t *testing.T) {
	a := NewAnalyzer(1024, 32, 44100)

	frame := a.Analyze(Bars, silence(1024), 20)
	if len(frame.Bins) != 10 {
		t.Errorf("width 20: got %d bars, want 10", len(frame.Bins))
	}

	frame = a.Analyze(Bars, silence(1024), 200)
	if len(frame.Bins) != 32 {
		t.Errorf("width 200: got %d bars, want the configured cap 32", len(frame.Bins))
	}
}

func TestAnalyzer_Spectrum_ResizeBetweenFrames(t *testing.T) {
	a := NewAnalyzer(1024, 32, 44100)

	a.Analyze(Spectrum, sine(1024, 440, 44100), 40)
	frame := a.Analyze(Spectrum, sine(1024, 440, 44100), 24)
	if len(frame.Bins) != 24 {
		t.Fatalf("after resize: got %d bins, want 24", len(frame.Bins))
	}
}

func TestAnalyzer_SinePeak_NearestBin(t *testing.T) {
	const (
		fftSize    = 1024
		sampleRate = 44100.0
	)
	a := NewAnalyzer(fftSize, 16, sampleRate)

	// Place the tone exactly on bin 64
	wantBin := 64
	freq := float64(wantBin) * sampleRate / fftSize

	bins := a.binMagnitudes(sine(fftSize, freq, sampleRate))

	peak := 1
	for i := 2; i < len(bins); i++ {
		if bins[i] > bins[peak] {
			peak = i
		}
	}

	if d := peak - wantBin; d < -1 || d > 1 {
		t.Errorf("magnitude peak at bin %d, want within one bin of %d", peak, wantBin)
	}
}

func TestAnalyzer_Spectrum_NonFiniteSanitized(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	samples := silence(1024)
	samples[10] = [2]float64{math.NaN(), math.Inf(1)}
	samples[11] = [2]float64{math.Inf(-1), math.NaN()}

	frame := a.Analyze(Spectrum, samples, 80)
	for i, v := range frame.Bins {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("bin %d = %v, non-finite input leaked through", i, v)
		}
	}
}

func TestAnalyzer_Spectrum_SmoothingDecays(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	loud := a.Analyze(Spectrum, sine(1024, 440, 44100), 80)

	var excited float64
	for _, v := range loud.Bins {
		excited = math.Max(excited, v)
	}
	if excited == 0 {
		t.Fatal("sine input produced no spectrum energy")
	}

	// One silent frame decays but does not zero the bars
	after := a.Analyze(Spectrum, silence(1024), 80)
	var remaining float64
	for _, v := range after.Bins {
		remaining = math.Max(remaining, v)
	}
	if remaining == 0 {
		t.Error("bars dropped to zero in one frame, want gradual decay")
	}
	if remaining >= excited {
		t.Errorf("bars did not decay: %v -> %v", excited, remaining)
	}
}

func TestAnalyzer_Waveform_Width(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	frame := a.Analyze(Waveform, sine(1024, 440, 44100), 50)

	if len(frame.Wave) != 50 {
		t.Fatalf("got %d columns, want 50", len(frame.Wave))
	}
	for i, v := range frame.Wave {
		if v < -1 || v > 1 {
			t.Errorf("col %d = %v, out of [-1, 1]", i, v)
		}
	}
}

func TestAnalyzer_Waveform_PreservesAmplitude(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	frame := a.Analyze(Waveform, sine(1024, 440, 44100), 20)

	var peak float64
	for _, v := range frame.Wave {
		peak = math.Max(peak, math.Abs(v))
	}
	// Per-segment peak decimation keeps the full swing of the sine
	if peak < 0.9 {
		t.Errorf("decimated peak = %v, want near 1.0", peak)
	}
}

func TestAnalyzer_VU_Ballistics(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	loud := sine(1024, 440, 44100)

	first := a.Analyze(VU, loud, 80)
	if first.Left <= 0 {
		t.Fatal("VU level should rise on signal")
	}

	second := a.Analyze(VU, loud, 80)
	rise := second.Left - first.Left
	if rise < 0 {
		t.Fatalf("VU fell on sustained signal: %v -> %v", first.Left, second.Left)
	}

	afterSilence := a.Analyze(VU, silence(1024), 80)
	if afterSilence.Left >= second.Left {
		t.Error("VU did not fall on silence")
	}
	if afterSilence.Left == 0 {
		t.Error("VU dropped to zero in one frame, want slow release")
	}

	recovered := a.Analyze(VU, loud, 80)
	if recovered.Left <= afterSilence.Left {
		t.Error("VU did not rise again on signal")
	}
}

func TestAnalyzer_SetSampleRate(t *testing.T) {
	a := NewAnalyzer(1024, 16, 44100)

	a.SetSampleRate(48000)
	if a.sampleRate != 48000 {
		t.Errorf("sampleRate = %v, want 48000", a.sampleRate)
	}

	a.SetSampleRate(0)
	if a.sampleRate != 48000 {
		t.Error("zero rate should be ignored")
	}
}
