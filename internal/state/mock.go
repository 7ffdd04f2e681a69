// internal/state/mock.go
package state

import (
	"database/sql"

	"github.com/llehouerou/muker/internal/playlist"
)

// Mock is a test double for Manager.
type Mock struct {
	playerState *PlayerState
	queueTracks []playlist.Track
	saveCalls   int
	closed      bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetPlayer() (*PlayerState, error) {
	if m.playerState == nil {
		def := DefaultPlayerState()
		return &def, nil
	}
	return m.playerState, nil
}

func (m *Mock) SavePlayer(state PlayerState) {
	m.playerState = &state
	m.saveCalls++
}

func (m *Mock) SavePlayerNow(state PlayerState) error {
	m.playerState = &state
	m.saveCalls++
	return nil
}

func (m *Mock) GetQueue() ([]playlist.Track, error) {
	return m.queueTracks, nil
}

func (m *Mock) SaveQueue(tracks []playlist.Track) error {
	m.queueTracks = tracks
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlayer(state *PlayerState) { m.playerState = state }

func (m *Mock) SetQueue(tracks []playlist.Track) { m.queueTracks = tracks }

func (m *Mock) SaveCalls() int { return m.saveCalls }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
