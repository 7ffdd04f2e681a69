// Package tags reads display metadata from audio files.
package tags

import (
	"path/filepath"
	"strings"
)

// Supported file extensions.
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
)

// Metadata holds the display metadata of a track. All fields may be
// partial or empty; the enrichment pass fills in missing values.
type Metadata struct {
	Title       string
	Artist      string
	Album       string
	Year        int
	Genre       string
	TrackNumber int
}

// IsMusicFile returns true if the path has a supported audio extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ExtMP3 || ext == ExtWAV || ext == ExtFLAC || ext == ExtOGG
}
