package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Stop stops playback and releases the current session's resources.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	// Tear down under the speaker lock so the seek loop never sees a
	// half-cleared session.
	speaker.Lock()
	streamer, file := p.streamer, p.file
	p.streamer = nil
	p.file = nil
	p.ctrl = nil
	p.volume = nil
	p.info = nil
	p.state = Stopped
	speaker.Unlock()

	if streamer != nil {
		streamer.Close()
	}
	if file != nil {
		file.Close()
	}
	p.tap.Reset()

	select {
	case <-p.done:
		// Already closed by the end-of-stream callback
	default:
		close(p.done)
	}
}

// Pause pauses playback. No-op unless Playing.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback. No-op unless Paused.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	// Read without the speaker lock. The value may be one block stale
	// but this path must never contend with the audio callback.
	return p.format.SampleRate.D(p.streamer.Position())
}

// SeekTo moves playback to an absolute position, clamped to
// [0, duration]. Non-blocking: the newest pending target wins.
func (p *Player) SeekTo(pos time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	select {
	case p.seekCh <- pos:
	default:
		// A seek is already pending, replace it with the newer target
		select {
		case <-p.seekCh:
		default:
		}
		select {
		case p.seekCh <- pos:
		default:
		}
	}
}

// SeekBy moves playback by a relative delta from the current position.
func (p *Player) SeekBy(delta time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}
	p.SeekTo(p.Position() + delta)
}

// seekLoop applies seek targets sequentially off the caller's goroutine.
func (p *Player) seekLoop() {
	for pos := range p.seekCh {
		p.doSeek(pos)
	}
}

func (p *Player) doSeek(pos time.Duration) {
	// All session field reads happen under the speaker lock; Stop()
	// clears those fields under the same lock.
	speaker.Lock()
	if p.streamer == nil || p.state == Stopped || p.volume == nil {
		speaker.Unlock()
		return
	}

	maxPos := p.streamer.Len()
	newPos := p.format.SampleRate.N(pos)

	// Seeking at or past the end finishes the track
	if newPos >= maxPos {
		speaker.Unlock()
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
		return
	}
	newPos = max(newPos, 0)

	// Mute across the discontinuity to avoid an audible pop, and drop
	// the tap so the visualizer does not show pre-seek audio
	p.volume.Silent = true
	_ = p.streamer.Seek(newPos)
	p.tap.Reset()
	speaker.Unlock()

	time.Sleep(100 * time.Millisecond)

	speaker.Lock()
	if p.volume != nil && p.state != Stopped && !p.muted {
		p.volume.Silent = false
	}
	speaker.Unlock()
}
