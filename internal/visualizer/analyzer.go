package visualizer

import (
	"math"
	"math/cmplx"

	"github.com/madelynnblue/go-dsp/fft"
)

// Smoothing coefficients. Spectrum bars and VU meters rise fast and
// fall slow so the display does not flicker frame-to-frame.
const (
	attackKeep = 0.4
	decayKeep  = 0.75
	vuAttack   = 0.5
	vuDecay    = 0.85
)

// Analyzer transforms sample-tap snapshots into visual frames. It keeps
// per-band and per-channel smoothing state between calls, so one
// Analyzer serves one render loop.
type Analyzer struct {
	fftSize  int
	numBands int

	sampleRate float64
	window     []float64
	mono       []float64
	prev       []float64

	vuLeft  float64
	vuRight float64
}

// NewAnalyzer creates an analyzer for the given FFT window size (a
// power of two) and default band count. The default caps the Bars
// resolution and applies whenever no display width is known yet.
func NewAnalyzer(fftSize, numBands int, sampleRate float64) *Analyzer {
	a := &Analyzer{
		fftSize:    fftSize,
		numBands:   numBands,
		sampleRate: sampleRate,
		window:     make([]float64, fftSize),
		mono:       make([]float64, fftSize),
		prev:       make([]float64, numBands),
	}
	for i := range fftSize {
		a.window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize-1)))
	}
	return a
}

// FFTSize returns the snapshot length the analyzer expects.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// SetSampleRate updates the rate used for frequency banding. Called
// when a track with a different sample rate starts.
func (a *Analyzer) SetSampleRate(rate float64) {
	if rate > 0 {
		a.sampleRate = rate
	}
}

// maxSpectrumBands caps spectrum resolution; past this the log-spaced
// low buckets collapse onto single FFT bins at the usual window sizes.
const maxSpectrumBands = 64

// Analyze produces one frame for the given style from a stereo
// snapshot. width is the display width in columns; it sizes the
// waveform trace and the spectrum band count, so every column carries
// data. Silence yields an all-zero frame, never an error.
func (a *Analyzer) Analyze(style Style, samples [][2]float64, width int) Frame {
	switch style {
	case Waveform:
		return Frame{Style: style, Wave: a.waveform(samples, width)}
	case VU:
		l, r := a.vu(samples)
		return Frame{Style: style, Left: l, Right: r}
	case Bars:
		// Bars draw two columns per band.
		return Frame{Style: style, Bins: a.spectrum(samples, a.bandCount(width/2, a.numBands))}
	default:
		return Frame{Style: style, Bins: a.spectrum(samples, a.bandCount(width, maxSpectrumBands))}
	}
}

// bandCount fits the band resolution to the available column slots.
// A missing width falls back to the configured default.
func (a *Analyzer) bandCount(slots, limit int) int {
	if slots < 1 {
		return a.numBands
	}
	return min(slots, limit)
}

// spectrum computes smoothed, normalized band magnitudes: mono mix,
// Hann window, real FFT, log-spaced banding over the first N/2 bins.
func (a *Analyzer) spectrum(samples [][2]float64, bands int) []float64 {
	// A display resize changes the band count; smoothing state restarts.
	if bands != len(a.prev) {
		a.prev = make([]float64, bands)
	}

	bins := a.binMagnitudes(samples)
	maxBin := len(bins)

	out := make([]float64, bands)
	for b := range bands {
		// Log-spaced bucket edges over [1, maxBin)
		lo := int(math.Pow(float64(maxBin), float64(b)/float64(bands)))
		hi := int(math.Pow(float64(maxBin), float64(b+1)/float64(bands)))
		if lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}
		if hi > maxBin {
			hi = maxBin
		}

		var sum float64
		for i := lo; i < hi; i++ {
			sum += bins[i]
		}
		avg := sum / float64(hi-lo)

		// dB-like scale mapped into [0, 1]
		var level float64
		if avg > 0 {
			level = (20*math.Log10(avg) + 60) / 60
		}
		level = max(0, min(1, level))

		// Fast attack, slow decay
		if level > a.prev[b] {
			level = level*(1-attackKeep) + a.prev[b]*attackKeep
		} else {
			level = level*(1-decayKeep) + a.prev[b]*decayKeep
		}
		a.prev[b] = level
		out[b] = level
	}
	return out
}

// binMagnitudes returns the magnitude of the first N/2 FFT bins of the
// windowed mono mix.
func (a *Analyzer) binMagnitudes(samples [][2]float64) []float64 {
	for i := range a.fftSize {
		var v float64
		if i < len(samples) {
			v = sanitize((samples[i][0] + samples[i][1]) / 2)
		}
		a.mono[i] = v * a.window[i]
	}

	spectrum := fft.FFTReal(a.mono)

	bins := make([]float64, a.fftSize/2)
	for i := range bins {
		bins[i] = cmplx.Abs(spectrum[i])
	}
	return bins
}

// waveform decimates the snapshot to width columns, keeping the peak
// amplitude of each segment with its sign so the trace keeps its shape.
func (a *Analyzer) waveform(samples [][2]float64, width int) []float64 {
	if width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(samples) == 0 {
		return out
	}

	segment := len(samples) / width
	if segment < 1 {
		segment = 1
	}
	for col := range width {
		start := col * segment
		if start >= len(samples) {
			break
		}
		end := min(start+segment, len(samples))

		var peak float64
		for i := start; i < end; i++ {
			v := sanitize((samples[i][0] + samples[i][1]) / 2)
			if math.Abs(v) > math.Abs(peak) {
				peak = v
			}
		}
		out[col] = max(-1, min(1, peak))
	}
	return out
}

// vu computes per-channel RMS levels with meter ballistics: rises track
// the signal quickly, falls bleed off slowly.
func (a *Analyzer) vu(samples [][2]float64) (left, right float64) {
	var sumL, sumR float64
	for _, s := range samples {
		l := sanitize(s[0])
		r := sanitize(s[1])
		sumL += l * l
		sumR += r * r
	}

	var rmsL, rmsR float64
	if len(samples) > 0 {
		rmsL = math.Sqrt(sumL / float64(len(samples)))
		rmsR = math.Sqrt(sumR / float64(len(samples)))
	}
	rmsL = min(1, rmsL)
	rmsR = min(1, rmsR)

	a.vuLeft = ballistics(a.vuLeft, rmsL)
	a.vuRight = ballistics(a.vuRight, rmsR)
	return a.vuLeft, a.vuRight
}

func ballistics(prev, level float64) float64 {
	if level > prev {
		return level*(1-vuAttack) + prev*vuAttack
	}
	return level*(1-vuDecay) + prev*vuDecay
}

// sanitize clamps non-finite sample values to zero so malformed audio
// degrades the display instead of poisoning the transform.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
