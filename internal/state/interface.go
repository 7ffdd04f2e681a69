// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/muker/internal/playlist"
)

// Interface defines the state manager contract for dependency injection
// and testing.
type Interface interface {
	DB() *sql.DB
	GetPlayer() (*PlayerState, error)
	SavePlayer(state PlayerState)
	SavePlayerNow(state PlayerState) error
	GetQueue() ([]playlist.Track, error)
	SaveQueue(tracks []playlist.Track) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
