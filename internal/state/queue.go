package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/muker/internal/db"
	"github.com/llehouerou/muker/internal/playlist"
)

// GetQueue returns the saved queue tracks in order.
func (m *Manager) GetQueue() ([]playlist.Track, error) {
	rows, err := m.db.Query(`
		SELECT path, title, artist, album, track_number, duration_ms
		FROM queue_tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []playlist.Track
	for rows.Next() {
		var t playlist.Track
		var title, artist, album sql.NullString
		var trackNumber, durationMS sql.NullInt64

		if err := rows.Scan(&t.Path, &title, &artist, &album, &trackNumber, &durationMS); err != nil {
			return nil, err
		}

		t.Title = dbutil.NullStringValue(title)
		t.Artist = dbutil.NullStringValue(artist)
		t.Album = dbutil.NullStringValue(album)
		t.TrackNumber = int(dbutil.NullInt64Value(trackNumber))
		t.Duration = time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond
		tracks = append(tracks, t)
	}

	return tracks, rows.Err()
}

// SaveQueue replaces the saved queue with the given tracks.
func (m *Manager) SaveQueue(tracks []playlist.Track) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO queue_tracks (position, path, title, artist, album, track_number, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range tracks {
			_, err = stmt.Exec(i, t.Path, t.Title, t.Artist, t.Album, t.TrackNumber, t.Duration.Milliseconds())
			if err != nil {
				return err
			}
		}
		return nil
	})
}
