// Package youtube is a client for the YouTube Data API v3: geo-scoped
// search plus the batched video and channel details endpoints.
package youtube

// SearchParams describes one call to the search endpoint.
type SearchParams struct {
	Query             string
	ChannelID         string // restrict results to one channel when set
	Lat               float64
	Lon               float64
	Radius            string // e.g. "50km"
	MaxResults        int
	RegionCode        string
	RelevanceLanguage string
}

// SearchItem is one result from the search endpoint.
type SearchItem struct {
	Kind         string // "video" or "channel"
	VideoID      string
	ChannelID    string
	Title        string
	ChannelTitle string
	PublishedAt  string
	ThumbnailURL string
}

// VideoDetails holds the statistics and duration of one video, keyed by
// video id in the enrichment map. Counts stay integer-as-string exactly
// as the API returns them.
type VideoDetails struct {
	Duration  string
	ViewCount string
	LikeCount string
}

// ChannelInfo holds the display metadata of one channel.
type ChannelInfo struct {
	Title        string
	ThumbnailURL string
}
