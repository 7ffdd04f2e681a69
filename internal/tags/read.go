package tags

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// Read extracts display metadata from the given audio file.
// Missing tags are left as zero values; a file without any readable
// tag block still yields a Metadata with the filename as title.
func Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// No readable tags - fall back to filename
		return &Metadata{Title: titleFromPath(path)}, nil
	}

	title := m.Title()
	if title == "" {
		title = titleFromPath(path)
	}

	track, _ := m.Track()

	return &Metadata{
		Title:       title,
		Artist:      m.Artist(),
		Album:       m.Album(),
		Year:        m.Year(),
		Genre:       m.Genre(),
		TrackNumber: track,
	}, nil
}

// EstimateBitrate derives an average bitrate in kbps from the file size
// and decoded duration. Returns 0 if either is unknown.
func EstimateBitrate(path string, duration time.Duration) int {
	if duration <= 0 {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return int(float64(info.Size()*8) / duration.Seconds() / 1000)
}

// titleFromPath returns the filename without extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
