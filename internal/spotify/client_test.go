package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/llehouerou/muker/internal/playlist"
)

const searchBody = `{
	"tracks": {
		"items": [{
			"id": "3n3Ppam7vgaVa1iaRUc9Lp",
			"name": "Mr. Brightside",
			"artists": [{"name": "The Killers"}],
			"album": {"name": "Hot Fuss", "release_date": "2004-06-15"},
			"track_number": 2,
			"duration_ms": 222586
		}]
	}
}`

// newTestClient wires a client against stub auth and API servers.
func newTestClient(t *testing.T, searchHandler http.HandlerFunc) (*Client, *int) {
	t.Helper()

	tokenCalls := 0
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if r.Method != http.MethodPost {
			t.Errorf("token request method = %s, want POST", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Error("token request missing basic auth credentials")
		}
		if err := r.ParseForm(); err != nil || r.Form.Get("grant_type") != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", r.Form.Get("grant_type"))
		}
		fmt.Fprint(w, `{"access_token": "test-token", "expires_in": 3600}`)
	}))
	t.Cleanup(auth.Close)

	api := httptest.NewServer(searchHandler)
	t.Cleanup(api.Close)

	c := New("id", "secret")
	c.authURL = auth.URL
	c.apiURL = api.URL
	return c, &tokenCalls
}

func TestClient_SearchTrack(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		q := r.URL.Query().Get("q")
		if q != "artist:The Killers track:Mr. Brightside" {
			t.Errorf("query = %q", q)
		}
		fmt.Fprint(w, searchBody)
	})

	got, err := c.SearchTrack(context.Background(), "The Killers", "Mr. Brightside", "")
	if err != nil {
		t.Fatalf("SearchTrack() error = %v", err)
	}

	if got.Artist != "The Killers" || got.Album != "Hot Fuss" {
		t.Errorf("result = %+v", got)
	}
	if got.Year != 2004 {
		t.Errorf("Year = %d, want 2004", got.Year)
	}
	if got.TrackNumber != 2 {
		t.Errorf("TrackNumber = %d, want 2", got.TrackNumber)
	}
	if got.Duration != 222586*time.Millisecond {
		t.Errorf("Duration = %v", got.Duration)
	}
}

func TestClient_SearchTrack_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"tracks": {"items": []}}`)
	})

	_, err := c.SearchTrack(context.Background(), "Nobody", "Nothing", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SearchTrack() error = %v, want ErrNotFound", err)
	}
}

func TestClient_SearchTrack_EmptyQuery(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchBody)
	})

	_, err := c.SearchTrack(context.Background(), "", "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SearchTrack() with no fields error = %v, want ErrNotFound", err)
	}
}

func TestClient_TokenReused(t *testing.T) {
	c, tokenCalls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchBody)
	})

	ctx := context.Background()
	if _, err := c.SearchTrack(ctx, "a", "b", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SearchTrack(ctx, "a", "b", ""); err != nil {
		t.Fatal(err)
	}

	if *tokenCalls != 1 {
		t.Errorf("token endpoint hit %d times, want cached token reused", *tokenCalls)
	}
}

func TestClient_SearchTrack_ServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := c.SearchTrack(context.Background(), "a", "b", ""); err == nil {
		t.Error("expected error on non-200 search response")
	}
}

func TestEnricher_FillsOnlyEmptyFields(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchBody)
	})
	e := &Enricher{client: c}

	track := playlist.Track{
		Path:   "/music/brightside.mp3",
		Title:  "Mr. Brightside",
		Artist: "The Killers (Local Rip)",
	}
	e.Enrich(context.Background(), &track)

	if track.Artist != "The Killers (Local Rip)" {
		t.Errorf("Artist = %q, existing value must not be overwritten", track.Artist)
	}
	if track.Album != "Hot Fuss" {
		t.Errorf("Album = %q, want filled from search", track.Album)
	}
	if track.Year != 2004 || track.TrackNumber != 2 {
		t.Errorf("Year/TrackNumber = %d/%d, want 2004/2", track.Year, track.TrackNumber)
	}
}

func TestEnricher_ServiceUnavailable_SilentFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	e := &Enricher{client: c}

	track := playlist.Track{Path: "/music/a.mp3", Title: "Local Title"}
	e.Enrich(context.Background(), &track)

	if track.Title != "Local Title" || track.Album != "" {
		t.Errorf("track mutated on service failure: %+v", track)
	}
}

func TestEnricher_Disabled(t *testing.T) {
	e := NewEnricher("", "")

	if e.Enabled() {
		t.Error("Enabled() = true without credentials")
	}

	track := playlist.Track{Path: "/music/a.mp3"}
	e.Enrich(context.Background(), &track)
	if track.Title != "" {
		t.Errorf("disabled enricher mutated track: %+v", track)
	}
}
