// Package state persists player settings and the queue across restarts
// in an XDG-located sqlite database.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "muker"
	dbFileName   = "muker.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. Player-state saves are debounced so
// volume keys held down do not hammer the disk; the queue is saved
// immediately since it changes rarely.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *PlayerState
}

// Open opens (creating if needed) the state database at the XDG data
// location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return openPath(dbPath)
}

func openPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending debounced save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = savePlayer(m.db, *pending)
	}

	return m.db.Close()
}

// DB exposes the underlying handle for extensions.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// SavePlayer schedules a debounced write of the player state. The last
// state given before the debounce window elapses wins.
func (m *Manager) SavePlayer(state PlayerState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = savePlayer(m.db, *pending)
		}
	})
}
