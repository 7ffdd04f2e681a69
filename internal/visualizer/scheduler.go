package visualizer

import (
	"context"
	"sync"
	"time"
)

// SampleSource yields a point-in-time copy of the most recent audio
// frames. The player's sample tap satisfies this.
type SampleSource interface {
	Snapshot(n int) [][2]float64
}

// Scheduler drives the render path: at a fixed wall-clock rate it pulls
// a snapshot, runs the analyzer, and emits a frame. Visualization is
// lossy by design; a slow consumer gets fresh frames, never a backlog,
// and the audio path is never waited on.
type Scheduler struct {
	source   SampleSource
	analyzer *Analyzer
	interval time.Duration
	frames   chan Frame

	mu    sync.Mutex
	style Style
	width int
}

// MinFPS and MaxFPS bound the render rate.
const (
	MinFPS = 30
	MaxFPS = 60
)

// NewScheduler creates a scheduler emitting fps frames per second.
func NewScheduler(source SampleSource, analyzer *Analyzer, fps int) *Scheduler {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return &Scheduler{
		source:   source,
		analyzer: analyzer,
		interval: time.Second / time.Duration(fps),
		frames:   make(chan Frame, 1),
		style:    Spectrum,
		width:    80,
	}
}

// Frames returns the channel frames are emitted on.
func (s *Scheduler) Frames() <-chan Frame { return s.frames }

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// SetStyle changes which analysis variant runs on subsequent ticks.
func (s *Scheduler) SetStyle(style Style) {
	s.mu.Lock()
	s.style = style
	s.mu.Unlock()
}

// Style returns the active style.
func (s *Scheduler) Style() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// CycleStyle advances to the next style and returns it.
func (s *Scheduler) CycleStyle() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = s.style.Cycle()
	return s.style
}

// SetWidth updates the display width used for waveform decimation.
func (s *Scheduler) SetWidth(width int) {
	s.mu.Lock()
	if width > 0 {
		s.width = width
	}
	s.mu.Unlock()
}

// Run ticks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Tick produces and emits a single frame. Exposed for callers that
// drive the cadence themselves (a TUI tick loop).
func (s *Scheduler) Tick() {
	s.tick()
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	style := s.style
	width := s.width
	s.mu.Unlock()

	samples := s.source.Snapshot(s.analyzer.FFTSize())
	frame := s.analyzer.Analyze(style, samples, width)

	// Replace any unconsumed frame so the consumer always sees the
	// freshest data; never block.
	select {
	case s.frames <- frame:
	default:
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- frame:
		default:
		}
	}
}
