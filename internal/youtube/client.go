package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://www.googleapis.com"

// MaxIDsPerCall is the hard limit the details endpoints place on the
// number of ids in a single request.
const MaxIDsPerCall = 50

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithCallObserver registers a callback invoked after every upstream call
// with the endpoint name and HTTP status (used for metrics).
func WithCallObserver(fn func(endpoint string, status int)) ClientOption {
	return func(c *Client) {
		c.observe = fn
	}
}

// Client is a YouTube Data API v3 client authenticated by API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	observe    func(endpoint string, status int)
}

// NewClient creates a new YouTube API client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search issues one geo-scoped search call and returns the raw result page.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]SearchItem, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", p.Query)
	q.Set("location", fmt.Sprintf("%f,%f", p.Lat, p.Lon))
	q.Set("locationRadius", p.Radius)
	q.Set("maxResults", strconv.Itoa(p.MaxResults))
	q.Set("key", c.apiKey)
	if p.ChannelID != "" {
		q.Set("channelId", p.ChannelID)
	}
	if p.RegionCode != "" {
		q.Set("regionCode", p.RegionCode)
	}
	if p.RelevanceLanguage != "" {
		q.Set("relevanceLanguage", p.RelevanceLanguage)
	}

	body, err := c.doRequest(ctx, "search", q)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	items := make([]SearchItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		kind := "video"
		if item.ID.VideoID == "" && item.ID.ChannelID != "" {
			kind = "channel"
		}

		// Thumbnail fallback for search snippets: default, then medium.
		thumbnail := item.Snippet.Thumbnails.Default.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		}

		items = append(items, SearchItem{
			Kind:         kind,
			VideoID:      item.ID.VideoID,
			ChannelID:    item.Snippet.ChannelID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			ThumbnailURL: thumbnail,
		})
	}

	return items, nil
}

// VideoDetails fetches duration and statistics for the given video ids,
// batching into calls of at most MaxIDsPerCall ids. Best-effort: a failed
// batch is logged and its ids are simply absent from the result.
func (c *Client) VideoDetails(ctx context.Context, ids []string) map[string]VideoDetails {
	return fetchBatched(ctx, ids, MaxIDsPerCall, c.videoDetailsPage)
}

func (c *Client) videoDetailsPage(ctx context.Context, ids []string) (map[string]VideoDetails, error) {
	q := url.Values{}
	q.Set("part", "contentDetails,statistics")
	q.Set("id", strings.Join(ids, ","))
	q.Set("key", c.apiKey)

	body, err := c.doRequest(ctx, "videos", q)
	if err != nil {
		return nil, err
	}

	var resp videosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse videos response: %w", err)
	}

	details := make(map[string]VideoDetails, len(resp.Items))
	for _, item := range resp.Items {
		details[item.ID] = VideoDetails{
			Duration:  item.ContentDetails.Duration,
			ViewCount: item.Statistics.ViewCount,
			LikeCount: item.Statistics.LikeCount,
		}
	}
	return details, nil
}

// ChannelDetails fetches display metadata for the given channel ids with
// the same batching and best-effort semantics as VideoDetails.
func (c *Client) ChannelDetails(ctx context.Context, ids []string) map[string]ChannelInfo {
	return fetchBatched(ctx, ids, MaxIDsPerCall, c.channelDetailsPage)
}

func (c *Client) channelDetailsPage(ctx context.Context, ids []string) (map[string]ChannelInfo, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", strings.Join(ids, ","))
	q.Set("key", c.apiKey)

	body, err := c.doRequest(ctx, "channels", q)
	if err != nil {
		return nil, err
	}

	var resp channelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse channels response: %w", err)
	}

	info := make(map[string]ChannelInfo, len(resp.Items))
	for _, item := range resp.Items {
		// Thumbnail fallback for channel records: default, then medium.
		// Kept separate from the search-snippet chain on purpose.
		thumbnail := item.Snippet.Thumbnails.Default.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		}
		info[item.ID] = ChannelInfo{
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnail,
		}
	}
	return info, nil
}

// fetchBatched splits ids into chunks of at most size, issues one fetch per
// chunk, and merges the per-id maps. A failed chunk degrades to missing
// entries instead of failing the whole enrichment.
func fetchBatched[T any](ctx context.Context, ids []string, size int, fetch func(context.Context, []string) (map[string]T, error)) map[string]T {
	merged := make(map[string]T, len(ids))
	for _, batch := range Chunk(ids, size) {
		page, err := fetch(ctx, batch)
		if err != nil {
			log.Printf("youtube: details batch of %d ids failed: %v", len(batch), err)
			continue
		}
		for id, v := range page {
			merged[id] = v
		}
	}
	return merged
}

// Chunk splits ids into consecutive groups of at most size elements.
func Chunk(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

func (c *Client) doRequest(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/youtube/v3/%s?%s", c.baseURL, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.observe != nil {
			c.observe(endpoint, 0)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if c.observe != nil {
		c.observe(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube %s returned status %d", endpoint, resp.StatusCode)
	}

	return body, nil
}

// API response types (private - implementation detail)

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}
