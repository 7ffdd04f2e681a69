package player

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// fakeStreamer is an in-memory seekable stream for control tests.
type fakeStreamer struct {
	length int
	pos    int
	closed bool
}

func (f *fakeStreamer) Stream(samples [][2]float64) (int, bool) {
	n := min(len(samples), f.length-f.pos)
	f.pos += n
	return n, n > 0
}

func (f *fakeStreamer) Err() error       { return nil }
func (f *fakeStreamer) Len() int         { return f.length }
func (f *fakeStreamer) Position() int    { return f.pos }
func (f *fakeStreamer) Seek(p int) error { f.pos = p; return nil }
func (f *fakeStreamer) Close() error     { f.closed = true; return nil }

// newTestSession builds a playing Player around a fake stream without
// claiming the audio device.
func newTestSession(fs *fakeStreamer) *Player {
	return &Player{
		state:       Playing,
		tap:         NewTap(64),
		streamer:    fs,
		volume:      &effects.Volume{Streamer: fs, Base: 2},
		ctrl:        &beep.Ctrl{},
		format:      beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2},
		volumeLevel: 1.0,
		done:        make(chan struct{}),
		finishedCh:  make(chan struct{}, 1),
		seekCh:      make(chan time.Duration, 1),
	}
}

func TestStop_ReleasesSession(t *testing.T) {
	fs := &fakeStreamer{length: 44100}
	p := newTestSession(fs)

	p.Stop()

	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if !fs.closed {
		t.Error("Stop() should close the streamer")
	}
	if p.streamer != nil || p.volume != nil || p.ctrl != nil {
		t.Error("Stop() should clear the session fields")
	}
}

func TestDoSeek_MovesPosition(t *testing.T) {
	fs := &fakeStreamer{length: 44100 * 10}
	p := newTestSession(fs)

	p.doSeek(2 * time.Second)

	if got := fs.pos; got != 44100*2 {
		t.Errorf("pos = %d, want %d", got, 44100*2)
	}
	if p.volume.Silent {
		t.Error("volume should be unmuted once the seek settles")
	}
}

func TestDoSeek_PastEndFinishesTrack(t *testing.T) {
	fs := &fakeStreamer{length: 44100}
	p := newTestSession(fs)

	p.doSeek(time.Minute)

	select {
	case <-p.finishedCh:
	default:
		t.Error("seeking past the end should signal track completion")
	}
	if fs.pos != 0 {
		t.Errorf("pos = %d, past-end seek must not move the stream", fs.pos)
	}
}

func TestStop_DuringSeek(t *testing.T) {
	fs := &fakeStreamer{length: 44100 * 10}
	p := newTestSession(fs)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.doSeek(5 * time.Second)
	}()
	go func() {
		defer wg.Done()
		p.Stop()
	}()
	wg.Wait()

	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}

	// A seek after teardown is a no-op.
	p.doSeek(time.Second)
}
