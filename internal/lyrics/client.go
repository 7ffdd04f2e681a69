package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound means the catalog has no lyrics for the track. It marks
// an empty result, not a failure.
var ErrNotFound = errors.New("lyrics not found")

const (
	defaultAPIURL = "https://lrclib.net/api"
	userAgent     = "muker-music-player/1.0 (https://github.com/llehouerou/muker)"
)

// Client talks to the lrclib.net lyrics catalog.
type Client struct {
	httpClient *http.Client
	apiURL     string
}

// NewClient creates a client against the public lrclib API.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiURL:     defaultAPIURL,
	}
}

// catalogEntry is one lrclib record. Either lyrics field may be empty.
type catalogEntry struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// get fetches the catalog entry for an exact artist/title match.
// Duration, when known, helps lrclib pick the right recording.
func (c *Client) get(ctx context.Context, artist, title, album string, duration time.Duration) (*catalogEntry, error) {
	params := url.Values{}
	params.Set("artist_name", artist)
	params.Set("track_name", title)
	if album != "" {
		params.Set("album_name", album)
	}
	if duration > 0 {
		params.Set("duration", fmt.Sprintf("%.0f", duration.Seconds()))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/get?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var entry catalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &entry, nil
}

// parse turns a catalog entry into Lyrics, preferring the synced form.
func (e *catalogEntry) parse() *Lyrics {
	var parsed *Lyrics
	switch {
	case e.SyncedLyrics != "":
		var err error
		parsed, err = ParseLRC(strings.NewReader(e.SyncedLyrics))
		if err != nil {
			return nil
		}
	case e.PlainLyrics != "":
		parsed = ParseUnsynced(e.PlainLyrics)
	default:
		return nil
	}

	if parsed.Title == "" {
		parsed.Title = e.TrackName
	}
	if parsed.Artist == "" {
		parsed.Artist = e.ArtistName
	}
	if parsed.Album == "" {
		parsed.Album = e.AlbumName
	}
	return parsed
}
