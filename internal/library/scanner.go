// Package library discovers audio files on disk.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/muker/internal/tags"
)

// ScanResult holds the outcome of a library scan.
type ScanResult struct {
	Files     []string // supported audio files, sorted by path
	TotalSize int64    // bytes across all discovered files
}

// Scan walks the given source directories and returns all supported audio
// files in a stable order. Unreadable entries are skipped, not fatal.
func Scan(sources []string) ScanResult {
	var result ScanResult

	for _, src := range sources {
		_ = filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			// Skip any walk errors - intentionally continuing to scan other paths
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() {
				return nil
			}
			if !tags.IsMusicFile(path) {
				return nil
			}

			info, infoErr := d.Info()
			// Skip files we can't stat - intentionally continuing to scan other files
			if infoErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}

			result.Files = append(result.Files, path)
			result.TotalSize += info.Size()
			return nil
		})
	}

	// Sort for consistent playlist ordering across runs
	sort.Strings(result.Files)

	return result
}

// Summary returns a short human-readable description of the scan.
func (r ScanResult) Summary() string {
	noun := "tracks"
	if len(r.Files) == 1 {
		noun = "track"
	}
	return fmt.Sprintf("%d %s (%s)", len(r.Files), noun, humanize.Bytes(uint64(r.TotalSize)))
}
