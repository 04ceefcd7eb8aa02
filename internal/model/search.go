package model

// SearchRequest is the API request body for POST /api/search.
// Lat and Lon are pointers so a missing coordinate can be told apart
// from a malformed one.
type SearchRequest struct {
	Query      string   `json:"query"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	Radius     string   `json:"radius,omitempty"`
	RegionCode string   `json:"regionCode,omitempty"`
}

// ChannelVideosRequest is the API request body for POST /api/channel-videos.
type ChannelVideosRequest struct {
	ChannelID string   `json:"channelId"`
	Query     string   `json:"query,omitempty"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Radius    string   `json:"radius,omitempty"`
}

// Geolocation echoes the geographic scope of a search back to the client.
type Geolocation struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius string  `json:"radius"`
}

// EnrichedVideo is a search result video merged with its statistics and
// duration. ChannelTitle is omitted for videos nested under a related
// channel, where the parent record already carries it.
type EnrichedVideo struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title,omitempty"`
	Duration     string `json:"duration"`
	ViewCount    int64  `json:"view_count"`
	PublishedAt  string `json:"published_at"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// RelatedChannel groups the videos of a channel that contributed at least
// the threshold count of results to one search response.
type RelatedChannel struct {
	ChannelID           string          `json:"channel_id"`
	ChannelTitle        string          `json:"channel_title"`
	ChannelThumbnailURL string          `json:"channel_thumbnail_url"`
	Videos              []EnrichedVideo `json:"videos"`
}

// ClassificationResult is the stable partition of one search response.
type ClassificationResult struct {
	RelatedChannels []RelatedChannel `json:"related_channels"`
	OtherVideos     []EnrichedVideo  `json:"other_videos"`
}

// SearchResponse is the API response for POST /api/search.
type SearchResponse struct {
	Status      string               `json:"status"`
	SearchTerm  string               `json:"search_term"`
	Geolocation Geolocation          `json:"geolocation"`
	Results     ClassificationResult `json:"results"`
}

// ChannelVideosResponse is the API response for POST /api/channel-videos.
type ChannelVideosResponse struct {
	Status      string          `json:"status"`
	ChannelID   string          `json:"channel_id"`
	Geolocation Geolocation     `json:"geolocation"`
	Videos      []EnrichedVideo `json:"videos"`
}
