// Package visualizer turns the audio engine's sample tap into
// renderable visual frames: spectrum bars, waveform traces, and VU
// levels, produced at a fixed frame rate independent of audio timing.
package visualizer

import "fmt"

// Style selects how a visual frame is derived and drawn. The set is
// closed; switching style changes only the analysis variant, never the
// upstream audio pipeline.
type Style int

const (
	Spectrum Style = iota
	Waveform
	VU
	Bars
)

var styleNames = map[Style]string{
	Spectrum: "spectrum",
	Waveform: "waveform",
	VU:       "vu",
	Bars:     "bars",
}

// String returns the style's config/persistence name.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "spectrum"
}

// Cycle returns the next style in display order.
func (s Style) Cycle() Style {
	switch s {
	case Spectrum:
		return Waveform
	case Waveform:
		return VU
	case VU:
		return Bars
	default:
		return Spectrum
	}
}

// ParseStyle converts a config/persistence name back to a Style.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return Spectrum, fmt.Errorf("unknown visualizer style: %q", name)
}
