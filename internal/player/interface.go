// internal/player/interface.go
package player

import "time"

// Interface defines the audio engine contract for dependency injection
// and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Info() *StreamInfo
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration)
	SeekBy(delta time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	Tap() *Tap
	OnFinished(fn func())
	FinishedChan() <-chan struct{}
	Done() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
