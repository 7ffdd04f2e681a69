package lyrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Origin says where a fetch result came from.
type Origin string

const (
	OriginFile  Origin = "file"  // .lrc next to the audio file
	OriginCache Origin = "cache" // earlier API hit on disk
	OriginAPI   Origin = "api"
	OriginNone  Origin = "none"
)

// Request identifies the track to fetch lyrics for.
type Request struct {
	AudioPath string
	Artist    string
	Title     string
	Album     string
	Duration  time.Duration
}

// Result is a completed fetch. Lyrics is nil when Origin is OriginNone.
type Result struct {
	Lyrics *Lyrics
	Origin Origin
	Err    error
}

// Source resolves lyrics for tracks, checking a sidecar .lrc file,
// then the on-disk cache, then the lrclib catalog. API hits with
// synced lyrics are cached for next time.
type Source struct {
	client   *Client
	cacheDir string
}

// NewSource creates a Source caching under the XDG cache directory.
func NewSource() *Source {
	return &Source{
		client:   NewClient(),
		cacheDir: filepath.Join(xdg.CacheHome, "muker", "lyrics"),
	}
}

// Fetch resolves lyrics for the given track. A missing track is not an
// error; the Result carries OriginNone and a nil Err.
func (s *Source) Fetch(ctx context.Context, req Request) Result {
	if req.AudioPath != "" {
		if parsed, err := s.loadFile(sidecarPath(req.AudioPath)); err == nil && len(parsed.Lines) > 0 {
			return Result{Lyrics: parsed, Origin: OriginFile}
		}
	}

	if req.Artist == "" || req.Title == "" {
		return Result{Origin: OriginNone}
	}

	if parsed, err := s.loadFile(s.cachePath(req.Artist, req.Title)); err == nil && len(parsed.Lines) > 0 {
		return Result{Lyrics: parsed, Origin: OriginCache}
	}

	entry, err := s.client.get(ctx, req.Artist, req.Title, req.Album, req.Duration)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Result{Origin: OriginNone}
		}
		return Result{Origin: OriginNone, Err: err}
	}

	parsed := entry.parse()
	if parsed == nil || len(parsed.Lines) == 0 {
		return Result{Origin: OriginNone}
	}

	if entry.SyncedLyrics != "" {
		_ = s.store(req.Artist, req.Title, entry.SyncedLyrics)
	}
	return Result{Lyrics: parsed, Origin: OriginAPI}
}

// sidecarPath swaps the audio extension for .lrc.
func sidecarPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return audioPath[:len(audioPath)-len(ext)] + ".lrc"
}

func (s *Source) loadFile(path string) (*Lyrics, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLRC(f)
}

func (s *Source) cachePath(artist, title string) string {
	if s.cacheDir == "" {
		return ""
	}
	return filepath.Join(s.cacheDir, cacheName(artist)+" - "+cacheName(title)+".lrc")
}

func (s *Source) store(artist, title, content string) error {
	path := s.cachePath(artist, title)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}

// cacheName flattens a tag value into a safe filename component.
func cacheName(value string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"/\|?*`, r):
			return '_'
		default:
			return r
		}
	}, value)
	mapped = strings.Trim(mapped, " .")
	if len(mapped) > 80 {
		mapped = mapped[:80]
	}
	if mapped == "" {
		mapped = "_"
	}
	return mapped
}
