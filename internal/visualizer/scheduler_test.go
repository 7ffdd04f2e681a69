package visualizer

import (
	"context"
	"testing"
	"time"
)

// stubSource returns a fixed snapshot regardless of n.
type stubSource struct {
	samples [][2]float64
}

func (s *stubSource) Snapshot(n int) [][2]float64 {
	out := make([][2]float64, n)
	copy(out, s.samples)
	return out
}

func newTestScheduler() *Scheduler {
	src := &stubSource{samples: sine(1024, 440, 44100)}
	return NewScheduler(src, NewAnalyzer(1024, 16, 44100), 60)
}

func TestScheduler_Tick_EmitsFrame(t *testing.T) {
	s := newTestScheduler()

	s.Tick()

	select {
	case frame := <-s.Frames():
		if frame.Style != Spectrum {
			t.Errorf("frame style = %v, want Spectrum", frame.Style)
		}
		if len(frame.Bins) != 16 {
			t.Errorf("got %d bins, want 16", len(frame.Bins))
		}
	default:
		t.Fatal("no frame emitted after Tick")
	}
}

func TestScheduler_Tick_ReplacesStaleFrame(t *testing.T) {
	s := newTestScheduler()

	s.Tick()
	s.SetStyle(Waveform)
	s.Tick()

	// The unconsumed first frame must have been replaced, not queued
	// behind: the consumer sees only the freshest frame.
	select {
	case frame := <-s.Frames():
		if frame.Style != Waveform {
			t.Errorf("frame style = %v, want the newest (Waveform)", frame.Style)
		}
	default:
		t.Fatal("no frame available")
	}

	select {
	case <-s.Frames():
		t.Fatal("a second frame was queued; scheduler must drop, not buffer")
	default:
	}
}

func TestScheduler_CycleStyle(t *testing.T) {
	s := newTestScheduler()

	if got := s.CycleStyle(); got != Waveform {
		t.Errorf("CycleStyle() = %v, want Waveform", got)
	}
	if s.Style() != Waveform {
		t.Errorf("Style() = %v, want Waveform", s.Style())
	}
}

func TestScheduler_FPSClamped(t *testing.T) {
	src := &stubSource{}
	a := NewAnalyzer(1024, 16, 44100)

	slow := NewScheduler(src, a, 10)
	if slow.Interval() != time.Second/MinFPS {
		t.Errorf("interval = %v, want clamp to %d fps", slow.Interval(), MinFPS)
	}

	fast := NewScheduler(src, a, 240)
	if fast.Interval() != time.Second/MaxFPS {
		t.Errorf("interval = %v, want clamp to %d fps", fast.Interval(), MaxFPS)
	}
}

func TestScheduler_Run_StopsOnCancel(t *testing.T) {
	s := newTestScheduler()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Let at least one tick land
	select {
	case <-s.Frames():
	case <-time.After(time.Second):
		t.Fatal("no frame emitted within a second")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
