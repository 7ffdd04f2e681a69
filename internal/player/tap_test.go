package player

import (
	"sync"
	"testing"
)

func frames(vals ...float64) [][2]float64 {
	out := make([][2]float64, len(vals))
	for i, v := range vals {
		out[i] = [2]float64{v, v}
	}
	return out
}

func TestTap_Snapshot_ZeroPadded(t *testing.T) {
	tap := NewTap(8)
	tap.Write(frames(1, 2, 3))

	got := tap.Snapshot(5)

	if len(got) != 5 {
		t.Fatalf("Snapshot(5) returned %d frames, want exactly 5", len(got))
	}
	want := []float64{0, 0, 1, 2, 3}
	for i, w := range want {
		if got[i][0] != w {
			t.Errorf("frame %d = %v, want %v", i, got[i][0], w)
		}
	}
}

func TestTap_Snapshot_Empty(t *testing.T) {
	tap := NewTap(8)

	got := tap.Snapshot(4)

	if len(got) != 4 {
		t.Fatalf("Snapshot(4) returned %d frames, want 4", len(got))
	}
	for i, f := range got {
		if f[0] != 0 || f[1] != 0 {
			t.Errorf("frame %d = %v, want zero", i, f)
		}
	}
}

func TestTap_Snapshot_Chronological(t *testing.T) {
	tap := NewTap(4)
	// Overfill: 1..6 into a 4-frame ring leaves 3, 4, 5, 6
	tap.Write(frames(1, 2, 3, 4, 5, 6))

	got := tap.Snapshot(4)

	want := []float64{3, 4, 5, 6}
	for i, w := range want {
		if got[i][0] != w {
			t.Errorf("frame %d = %v, want %v", i, got[i][0], w)
		}
	}
}

func TestTap_Snapshot_LargerThanCapacity(t *testing.T) {
	tap := NewTap(4)
	tap.Write(frames(1, 2, 3, 4))

	got := tap.Snapshot(6)

	if len(got) != 6 {
		t.Fatalf("Snapshot(6) returned %d frames, want 6", len(got))
	}
	want := []float64{0, 0, 1, 2, 3, 4}
	for i, w := range want {
		if got[i][0] != w {
			t.Errorf("frame %d = %v, want %v", i, got[i][0], w)
		}
	}
}

func TestTap_Reset(t *testing.T) {
	tap := NewTap(8)
	tap.Write(frames(1, 2, 3))

	tap.Reset()

	for i, f := range tap.Snapshot(3) {
		if f[0] != 0 {
			t.Errorf("frame %d = %v after Reset, want zero", i, f[0])
		}
	}
}

func TestTap_Snapshot_ReturnsCopy(t *testing.T) {
	tap := NewTap(8)
	tap.Write(frames(1, 2))

	snap := tap.Snapshot(2)
	tap.Write(frames(9, 9, 9, 9, 9, 9, 9, 9))

	if snap[0][0] != 1 || snap[1][0] != 2 {
		t.Error("snapshot was mutated by a later write")
	}
}

func TestTap_ConcurrentWriteSnapshot(t *testing.T) {
	tap := NewTap(256)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			tap.Write(frames(1, 2, 3, 4))
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			got := tap.Snapshot(64)
			if len(got) != 64 {
				t.Errorf("Snapshot(64) returned %d frames", len(got))
				return
			}
		}
	}()
	wg.Wait()
}

func TestTapped_Stream(t *testing.T) {
	tap := NewTap(8)
	src := &stubStreamer{samples: frames(1, 2, 3)}
	ts := &tapped{s: src, tap: tap}

	buf := make([][2]float64, 3)
	n, ok := ts.Stream(buf)

	if n != 3 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (3, true)", n, ok)
	}
	got := tap.Snapshot(3)
	for i, w := range []float64{1, 2, 3} {
		if got[i][0] != w {
			t.Errorf("tapped frame %d = %v, want %v", i, got[i][0], w)
		}
	}
}

// stubStreamer yields a fixed set of frames then reports end-of-stream.
type stubStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *stubStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *stubStreamer) Err() error { return nil }
