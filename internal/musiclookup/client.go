package musiclookup

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

// DefaultBaseURL is the production iTunes Search API endpoint.
const DefaultBaseURL = "https://itunes.apple.com"

// DefaultRequestInterval spaces lookups during bulk scans.
const DefaultRequestInterval = 3 * time.Second

// Match is the artist credit found for a title.
type Match struct {
	Artist string
	Track  string
}

// Searcher defines the lookup operation the extraction pipeline uses.
type Searcher interface {
	SearchSong(ctx context.Context, title string) (*Match, error)
}

// Client queries the iTunes Search API, one request at a time with a
// minimum interval between requests.
type Client struct {
	baseURL     string
	country     string
	limit       int
	interval    time.Duration
	httpClient  *http.Client
	lastRequest time.Time
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestInterval overrides the minimum spacing between requests.
// Zero disables the wait, which tests rely on.
func WithRequestInterval(d time.Duration) Option {
	return func(c *Client) {
		c.interval = d
	}
}

// New creates a lookup client against the Japanese store.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    "JP",
		limit:      3,
		interval:   DefaultRequestInterval,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type searchResponse struct {
	Results []struct {
		ArtistName string `json:"artistName"`
		TrackName  string `json:"trackName"`
	} `json:"results"`
}

// SearchSong looks a title up and returns the first match, or nil when
// the store has nothing for it.
func (c *Client) SearchSong(ctx context.Context, title string) (*Match, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	if err := c.waitInterval(ctx); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse lookup url: %w", err)
	}
	params := url.Values{}
	params.Set("term", title)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", fmt.Sprintf("%d", c.limit))
	params.Set("country", c.country)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	c.lastRequest = time.Now()
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("itunes search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}

	first := payload.Results[0]
	match := &Match{Artist: first.ArtistName, Track: first.TrackName}
	if match.Track == "" {
		match.Track = title
	}
	return match, nil
}

func (c *Client) waitInterval(ctx context.Context) error {
	if c.interval <= 0 || c.lastRequest.IsZero() {
		return nil
	}
	elapsed := time.Since(c.lastRequest)
	if elapsed >= c.interval {
		return nil
	}
	select {
	case <-time.After(c.interval - elapsed):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
