package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Tap is a fixed-capacity ring buffer of stereo sample frames that
// mirrors the audio most recently handed to the output device. The
// visualizer reads from here, so it sees what the listener currently
// hears rather than what decoding has queued ahead.
//
// Writes happen on the speaker's pull path and must never wait on a
// reader; Snapshot returns a point-in-time copy, never a live slice.
type Tap struct {
	mu      sync.Mutex
	buf     [][2]float64
	pos     int
	size    int
	written int
}

// NewTap creates a ring buffer holding size stereo frames.
func NewTap(size int) *Tap {
	return &Tap{
		buf:  make([][2]float64, size),
		size: size,
	}
}

// Write appends frames to the ring, overwriting the oldest when full.
func (t *Tap) Write(samples [][2]float64) {
	t.mu.Lock()
	for _, s := range samples {
		t.buf[t.pos] = s
		t.pos = (t.pos + 1) % t.size
	}
	t.written += len(samples)
	if t.written > t.size {
		t.written = t.size
	}
	t.mu.Unlock()
}

// Snapshot returns a copy of the most recent n frames in chronological
// order. If fewer than n frames have been written since the last Reset,
// the leading frames are zero.
func (t *Tap) Snapshot(n int) [][2]float64 {
	out := make([][2]float64, n)

	t.mu.Lock()
	avail := min(t.written, n)
	start := (t.pos - avail + t.size) % t.size
	for i := range avail {
		out[n-avail+i] = t.buf[(start+i)%t.size]
	}
	t.mu.Unlock()

	return out
}

// Reset discards all buffered frames. Called on seek, stop, and track
// change so the visualizer does not show stale audio.
func (t *Tap) Reset() {
	t.mu.Lock()
	for i := range t.buf {
		t.buf[i] = [2]float64{}
	}
	t.pos = 0
	t.written = 0
	t.mu.Unlock()
}

// tapped passes audio through a streamer while mirroring the streamed
// frames into the tap. It sits directly upstream of the speaker so the
// tap is written at submission time, not decode time.
type tapped struct {
	s   beep.Streamer
	tap *Tap
}

func (ts *tapped) Stream(samples [][2]float64) (int, bool) {
	n, ok := ts.s.Stream(samples)
	ts.tap.Write(samples[:n])
	return n, ok
}

func (ts *tapped) Err() error {
	return ts.s.Err()
}
