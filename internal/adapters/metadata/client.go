package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// Client talks to a Piped-style video metadata API over plain HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given upstream base URL
// (e.g. "https://pipedapi.kavin.rocks").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// Compile-time check that *Client satisfies Fetcher.
var _ Fetcher = (*Client)(nil)

// FetchMetadata loads title, thumbnail, uploader and duration for one video
// id via GET /streams/{videoId}. Any non-2xx response or transport error is
// a fetch failure for that id; there is a single attempt per call.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (video.Metadata, error) {
	resp, err := c.get(ctx, "/streams/"+url.PathEscape(videoID), nil)
	if err != nil {
		return video.Metadata{}, fmt.Errorf("fetch metadata %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("upstream_event", "event", "metadata_fetch_failed", "video_id", videoID, "status", resp.StatusCode)
		return video.Metadata{}, fmt.Errorf("fetch metadata %s: upstream status %d", videoID, resp.StatusCode)
	}

	var md video.Metadata
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return video.Metadata{}, fmt.Errorf("fetch metadata %s: decode: %w", videoID, err)
	}
	return md, nil
}

// Get performs a raw upstream GET used by the passthrough proxy routes.
// The caller owns the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return c.get(ctx, path, query)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}
