package model

import "time"

// Favorite is a video saved to a user's favorites list. The display fields
// are captured from the search result at save time so the list renders
// without re-querying the video provider.
type Favorite struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"-"`
	VideoID          string    `json:"videoId"`
	Title            string    `json:"title"`
	Thumbnail        string    `json:"thumbnail"`
	Channel          string    `json:"channel"`
	ChannelThumbnail string    `json:"channelThumbnail"`
	Duration         string    `json:"duration"`
	Views            string    `json:"views"`
	PublishedTime    string    `json:"publishedTime"`
	Description      string    `json:"description"`
	DateAdded        time.Time `json:"dateAdded"`
}

// VideoPayload is the client-supplied video snapshot used when adding a
// favorite or a history entry.
type VideoPayload struct {
	VideoID          string  `json:"videoId"`
	Title            string  `json:"title"`
	Thumbnail        string  `json:"thumbnail"`
	Channel          string  `json:"channel"`
	ChannelThumbnail string  `json:"channelThumbnail"`
	Duration         string  `json:"duration"`
	Views            string  `json:"views"`
	PublishedTime    string  `json:"publishedTime"`
	Description      string  `json:"description"`
	WatchProgress    float64 `json:"watchProgress,omitempty"`
}

// ToggleResponse is the API response for POST /api/favorites/toggle.
type ToggleResponse struct {
	Added    bool      `json:"added"`
	Message  string    `json:"message,omitempty"`
	Favorite *Favorite `json:"favorite,omitempty"`
}
