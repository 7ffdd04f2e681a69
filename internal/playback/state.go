// internal/playback/state.go
package playback

// State represents the playback controller state.
//
// Transitions: Stopped → Loading → Playing ⇄ Paused → Stopped. Any
// state may transition to Stopped on explicit stop or fatal load
// failure. Playing → Stopped happens automatically on end-of-stream
// when the queue has no next track.
type State int

const (
	StateStopped State = iota
	StateLoading
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (loading, playing or paused).
func (s State) IsActive() bool {
	return s == StateLoading || s == StatePlaying || s == StatePaused
}
