package service

import (
	"strconv"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/youtube"
)

// ChannelThreshold is the minimum number of videos a channel must
// contribute to one search response to be grouped as a related channel.
// The comparison is inclusive: exactly this many counts.
const ChannelThreshold = 2

// Classify partitions enriched search results into related channels and
// individual videos. Videos are grouped by channel id in the order the
// search returned them; channels at or above threshold become
// RelatedChannel entries, everything else lands flat in OtherVideos in
// first-seen channel order. There is no re-sorting beyond the upstream
// relevance order.
func Classify(items []youtube.SearchItem, videos map[string]youtube.VideoDetails, channels map[string]youtube.ChannelInfo, threshold int) model.ClassificationResult {
	type group struct {
		videos       []model.EnrichedVideo
		channelTitle string // embedded title from the first search item, enrichment fallback
	}

	order := make([]string, 0, len(items))
	groups := make(map[string]*group, len(items))

	for _, item := range items {
		if item.Kind != "video" || item.VideoID == "" {
			continue
		}
		g, ok := groups[item.ChannelID]
		if !ok {
			g = &group{channelTitle: item.ChannelTitle}
			groups[item.ChannelID] = g
			order = append(order, item.ChannelID)
		}
		g.videos = append(g.videos, enrichVideo(item, videos))
	}

	result := model.ClassificationResult{
		RelatedChannels: []model.RelatedChannel{},
		OtherVideos:     []model.EnrichedVideo{},
	}

	for _, channelID := range order {
		g := groups[channelID]
		if len(g.videos) < threshold {
			result.OtherVideos = append(result.OtherVideos, g.videos...)
			continue
		}

		title := g.channelTitle
		thumbnail := ""
		if meta, ok := channels[channelID]; ok {
			if meta.Title != "" {
				title = meta.Title
			}
			thumbnail = meta.ThumbnailURL
		}

		// The parent record carries the channel title; drop it from the
		// nested videos.
		for i := range g.videos {
			g.videos[i].ChannelTitle = ""
		}

		result.RelatedChannels = append(result.RelatedChannels, model.RelatedChannel{
			ChannelID:           channelID,
			ChannelTitle:        title,
			ChannelThumbnailURL: thumbnail,
			Videos:              g.videos,
		})
	}

	return result
}

// enrichVideo merges one search item with its details. Missing or invalid
// metadata defaults to a zero duration and zero views; the video is never
// dropped.
func enrichVideo(item youtube.SearchItem, videos map[string]youtube.VideoDetails) model.EnrichedVideo {
	duration := "PT0S"
	var viewCount int64
	if meta, ok := videos[item.VideoID]; ok {
		if meta.Duration != "" {
			duration = meta.Duration
		}
		if n, err := strconv.ParseInt(meta.ViewCount, 10, 64); err == nil {
			viewCount = n
		}
	}

	return model.EnrichedVideo{
		VideoID:      item.VideoID,
		Title:        item.Title,
		ChannelTitle: item.ChannelTitle,
		Duration:     duration,
		ViewCount:    viewCount,
		PublishedAt:  item.PublishedAt,
		ThumbnailURL: item.ThumbnailURL,
	}
}
