package model

import "time"

// HistoryEntry is one watched video in a user's history. Re-watching a
// video refreshes WatchedAt and WatchProgress instead of inserting a
// duplicate row.
type HistoryEntry struct {
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
	WatchProgress    float64   `json:"watchProgress"`
	WatchedAt        time.Time `json:"watchedAt"`
}

// ProgressUpdateRequest is the API request body for PUT /api/history/progress.
type ProgressUpdateRequest struct {
	VideoID  string   `json:"videoId"`
	Progress *float64 `json:"progress"`
}
