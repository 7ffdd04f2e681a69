package spotify

import (
	"context"

	"github.com/llehouerou/muker/internal/playlist"
)

// Enricher fills missing track metadata from Spotify search results.
// The zero-credential Enricher is disabled and every call falls back
// to the track's local metadata.
type Enricher struct {
	client *Client
}

// NewEnricher creates an enricher, or a disabled one when either
// credential is empty.
func NewEnricher(clientID, clientSecret string) *Enricher {
	if clientID == "" || clientSecret == "" {
		return &Enricher{}
	}
	return &Enricher{client: New(clientID, clientSecret)}
}

// Enabled returns true if enrichment is configured.
func (e *Enricher) Enabled() bool {
	return e.client != nil
}

// Enrich fills only the track's empty display-metadata fields from the
// best search match. Lookup failures of any kind leave the track
// untouched; local metadata always wins over an unavailable service.
func (e *Enricher) Enrich(ctx context.Context, t *playlist.Track) {
	if e.client == nil || t == nil {
		return
	}

	result, err := e.client.SearchTrack(ctx, t.Artist, t.Title, t.Album)
	if err != nil {
		return
	}

	t.FillMissing(playlist.Track{
		Title:       result.Title,
		Artist:      result.Artist,
		Album:       result.Album,
		Year:        result.Year,
		TrackNumber: result.TrackNumber,
	})
}
