package state

import (
	"database/sql"
	"errors"
)

// PlayerState is the persisted slice of player settings: what is needed
// to restore volume, modes, and the visualizer after a restart.
type PlayerState struct {
	Volume          float64
	Muted           bool
	VisualizerStyle string
	RepeatMode      int
	Shuffle         bool
	CurrentIndex    int
}

// DefaultPlayerState is what a fresh installation starts from.
func DefaultPlayerState() PlayerState {
	return PlayerState{
		Volume:          1.0,
		VisualizerStyle: "spectrum",
		CurrentIndex:    -1,
	}
}

// GetPlayer returns the saved player state, or defaults when none has
// been saved yet.
func (m *Manager) GetPlayer() (*PlayerState, error) {
	var s PlayerState
	row := m.db.QueryRow(`
		SELECT volume, muted, visualizer_style, repeat_mode, shuffle, current_index
		FROM player_state WHERE id = 1
	`)
	err := row.Scan(&s.Volume, &s.Muted, &s.VisualizerStyle, &s.RepeatMode, &s.Shuffle, &s.CurrentIndex)
	if errors.Is(err, sql.ErrNoRows) {
		def := DefaultPlayerState()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func savePlayer(db *sql.DB, s PlayerState) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, volume, muted, visualizer_style, repeat_mode, shuffle, current_index)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			visualizer_style = excluded.visualizer_style,
			repeat_mode = excluded.repeat_mode,
			shuffle = excluded.shuffle,
			current_index = excluded.current_index
	`, s.Volume, s.Muted, s.VisualizerStyle, s.RepeatMode, s.Shuffle, s.CurrentIndex)
	return err
}

// SavePlayerNow writes the player state without debouncing. Used at
// shutdown.
func (m *Manager) SavePlayerNow(s PlayerState) error {
	return savePlayer(m.db, s)
}
