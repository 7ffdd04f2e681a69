package playlist

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/llehouerou/muker/internal/tags"
)

// FromPath creates a playlist track from a file path by reading its metadata.
func FromPath(path string) Track {
	m, err := tags.Read(path)
	if err != nil {
		// Fallback to basic info from filename
		return Track{
			Path:  path,
			Title: filepath.Base(path),
		}
	}

	return Track{
		Path:        path,
		Title:       m.Title,
		Artist:      m.Artist,
		Album:       m.Album,
		Genre:       m.Genre,
		Year:        m.Year,
		TrackNumber: m.TrackNumber,
	}
}

// FromPaths converts scanner output into playlist tracks, preserving order.
func FromPaths(paths []string) []Track {
	result := make([]Track, len(paths))
	for i, p := range paths {
		result[i] = FromPath(p)
	}
	return result
}

// FormatDuration formats a duration as M:SS.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
