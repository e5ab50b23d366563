package youtube

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

// DefaultBaseURL is the production Data API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// pageSize is the API maximum for list endpoints.
const pageSize = 50

// Video is one upload with the fields extraction cares about.
// StreamStart is the actual live start when the video was a stream;
// callers fall back to PublishedAt when it is empty.
type Video struct {
	ID          string
	Title       string
	Description string
	PublishedAt string
	StreamStart string
}

// Lister defines the read operations the scan pipeline uses.
type Lister interface {
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error)
	VideoDetails(ctx context.Context, videoIDs []string) ([]Video, error)
	CommentTexts(ctx context.Context, videoID string, max int) ([]string, error)
}

// Client provides access to the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lister = (*Client)(nil)

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

// New creates a Data API client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("youtube api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, payload any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse youtube url: %w", err)
	}
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &apiError{status: resp.StatusCode, path: path, latency: latency}
	}
	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("decode youtube response: %w", err)
	}
	return nil
}

type apiError struct {
	status  int
	path    string
	latency time.Duration
}

func (e *apiError) Error() string {
	return fmt.Sprintf("youtube %s returned %d (latency=%v)", e.path, e.status, e.latency)
}

type channelsResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// UploadsPlaylistID resolves the uploads playlist for a UC channel ID.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	channelID = strings.TrimSpace(channelID)
	if !strings.HasPrefix(channelID, "UC") {
		return "", fmt.Errorf("channel id %q must start with UC", channelID)
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)
	params.Set("fields", "items/contentDetails/relatedPlaylists/uploads")

	var payload channelsResponse
	if err := c.get(ctx, "/channels", params, &payload); err != nil {
		return "", err
	}
	if len(payload.Items) == 0 {
		return "", fmt.Errorf("channel %s not found", channelID)
	}
	uploads := payload.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("channel %s has no uploads playlist", channelID)
	}
	return uploads, nil
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// PlaylistVideoIDs walks a playlist and returns every video ID in API
// order, newest first for uploads playlists.
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return nil, errors.New("playlist id must not be empty")
	}

	var ids []string
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("part", "contentDetails")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", fmt.Sprintf("%d", pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var payload playlistItemsResponse
		if err := c.get(ctx, "/playlistItems", params, &payload); err != nil {
			return nil, err
		}
		for _, item := range payload.Items {
			if item.ContentDetails.VideoID != "" {
				ids = append(ids, item.ContentDetails.VideoID)
			}
		}
		if payload.NextPageToken == "" {
			return ids, nil
		}
		pageToken = payload.NextPageToken
	}
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		LiveStreamingDetails struct {
			ActualStartTime string `json:"actualStartTime"`
		} `json:"liveStreamingDetails"`
	} `json:"items"`
}

// VideoDetails fetches snippet and live streaming details for the given
// IDs, batching at the API page size. Result order follows the API, which
// preserves request order within each batch.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]Video, error) {
	var videos []Video
	for start := 0; start < len(videoIDs); start += pageSize {
		end := start + pageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		params := url.Values{}
		params.Set("part", "snippet,liveStreamingDetails")
		params.Set("id", strings.Join(videoIDs[start:end], ","))

		var payload videosResponse
		if err := c.get(ctx, "/videos", params, &payload); err != nil {
			return nil, err
		}
		for _, item := range payload.Items {
			videos = append(videos, Video{
				ID:          item.ID,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				PublishedAt: item.Snippet.PublishedAt,
				StreamStart: item.LiveStreamingDetails.ActualStartTime,
			})
		}
	}
	return videos, nil
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay string `json:"textDisplay"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
		Replies struct {
			Comments []struct {
				Snippet struct {
					TextDisplay string `json:"textDisplay"`
				} `json:"snippet"`
			} `json:"comments"`
		} `json:"replies"`
	} `json:"items"`
}

// CommentTexts returns up to max comment bodies for a video, replies
// flattened after their thread's top-level comment. Videos with comments
// disabled return an empty slice instead of an error.
func (c *Client) CommentTexts(ctx context.Context, videoID string, max int) ([]string, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.New("video id must not be empty")
	}
	if max <= 0 {
		return nil, nil
	}

	var texts []string
	pageToken := ""
	for len(texts) < max {
		params := url.Values{}
		params.Set("part", "snippet,replies")
		params.Set("videoId", videoID)
		params.Set("maxResults", fmt.Sprintf("%d", pageSize))
		params.Set("textFormat", "plainText")
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var payload commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", params, &payload); err != nil {
			var apiErr *apiError
			if errors.As(err, &apiErr) && apiErr.status == http.StatusForbidden {
				return nil, nil
			}
			return nil, err
		}

		for _, item := range payload.Items {
			if text := item.Snippet.TopLevelComment.Snippet.TextDisplay; text != "" {
				texts = append(texts, text)
			}
			for _, reply := range item.Replies.Comments {
				if text := reply.Snippet.TextDisplay; text != "" {
					texts = append(texts, text)
				}
			}
			if len(texts) >= max {
				break
			}
		}
		if payload.NextPageToken == "" {
			break
		}
		pageToken = payload.NextPageToken
	}
	if len(texts) > max {
		texts = texts[:max]
	}
	return texts, nil
}
