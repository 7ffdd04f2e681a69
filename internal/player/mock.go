// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state       State
	position    time.Duration
	info        *StreamInfo
	tap         *Tap
	volumeLevel float64
	muted       bool
	playErr     error
	playCalls   []string
	seekToCalls []time.Duration
	seekByCalls []time.Duration
	finishedCh  chan struct{}
	done        chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:       Stopped,
		tap:         NewTap(tapFrames),
		volumeLevel: 1.0,
		finishedCh:  make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	if m.info == nil {
		m.info = &StreamInfo{Path: path}
	} else {
		m.info.Path = path
	}
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.info = nil
	m.position = 0
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Info() *StreamInfo { return m.info }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration {
	if m.info == nil {
		return 0
	}
	return m.info.Duration
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekToCalls = append(m.seekToCalls, pos)
	d := m.Duration()
	if pos > d {
		pos = d
	}
	if pos < 0 {
		pos = 0
	}
	m.position = pos
}

func (m *Mock) SeekBy(delta time.Duration) {
	m.seekByCalls = append(m.seekByCalls, delta)
	m.SeekTo(m.position + delta)
}

func (m *Mock) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volumeLevel = level
}

func (m *Mock) Volume() float64 { return m.volumeLevel }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) Tap() *Tap { return m.tap }

func (m *Mock) OnFinished(_ func()) {}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

func (m *Mock) Done() <-chan struct{} {
	return m.done
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekToCalls() []time.Duration { return m.seekToCalls }

func (m *Mock) SetInfo(info *StreamInfo) { m.info = info }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates a track finishing.
func (m *Mock) SimulateFinished() {
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
