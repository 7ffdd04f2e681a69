package visualizer

// Frame is one render tick's worth of visual data. Frames are value
// objects handed to the presentation layer and never retained by the
// analyzer; only the field matching the style is populated.
type Frame struct {
	Style Style

	// Bins holds per-bucket magnitudes in [0, 1] for Spectrum and Bars.
	Bins []float64

	// Wave holds amplitude samples in [-1, 1] for Waveform, one per
	// display column.
	Wave []float64

	// Left and Right hold per-channel levels in [0, 1] for VU.
	Left  float64
	Right float64
}
