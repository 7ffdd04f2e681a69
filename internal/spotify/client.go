// Package spotify provides a minimal Spotify Web API client used to
// enrich track metadata. Only the client-credentials flow is used; no
// user login is involved.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no matching track is found.
var ErrNotFound = errors.New("track not found")

const (
	defaultAuthURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL  = "https://api.spotify.com/v1"
	userAgent      = "muker-music-player/1.0 (https://github.com/llehouerou/muker)"
)

// Client is a Spotify Web API client using the client-credentials flow.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	authURL      string
	apiURL       string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a new client with the given application credentials.
func New(clientID, clientSecret string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
		authURL:      defaultAuthURL,
		apiURL:       defaultAPIURL,
	}
}

// TrackResult holds the metadata extracted from a track search hit.
type TrackResult struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	Year        int
	TrackNumber int
	Duration    time.Duration
}

// SearchTrack searches for the best-matching track. Empty fields are
// left out of the query.
func (c *Client) SearchTrack(ctx context.Context, artist, title, album string) (*TrackResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var parts []string
	if artist != "" {
		parts = append(parts, "artist:"+artist)
	}
	if title != "" {
		parts = append(parts, "track:"+title)
	}
	if album != "" {
		parts = append(parts, "album:"+album)
	}
	if len(parts) == 0 {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("q", strings.Join(parts, " "))
	params.Set("type", "track")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.apiURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(result.Tracks.Items) == 0 {
		return nil, ErrNotFound
	}
	return result.Tracks.Items[0].toResult(), nil
}

type searchResponse struct {
	Tracks struct {
		Items []trackItem `json:"items"`
	} `json:"tracks"`
}

type trackItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
	} `json:"album"`
	TrackNumber int `json:"track_number"`
	DurationMS  int `json:"duration_ms"`
}

func (t trackItem) toResult() *TrackResult {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}

	var year int
	if len(t.Album.ReleaseDate) >= 4 {
		year, _ = strconv.Atoi(t.Album.ReleaseDate[:4])
	}

	return &TrackResult{
		ID:          t.ID,
		Title:       t.Name,
		Artist:      strings.Join(names, ", "),
		Album:       t.Album.Name,
		Year:        year,
		TrackNumber: t.TrackNumber,
		Duration:    time.Duration(t.DurationMS) * time.Millisecond,
	}
}

// token returns a valid access token, fetching a new one via the
// client-credentials grant when the cached token has expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request status: %s", resp.Status)
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", errors.New("empty access token")
	}

	c.accessToken = tr.AccessToken
	// Renew a minute early so in-flight requests never carry a token
	// that expires mid-request
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - time.Minute)
	return c.accessToken, nil
}
