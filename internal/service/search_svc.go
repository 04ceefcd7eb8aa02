package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/youtube"
)

const (
	// DefaultRadius is applied when a search request omits the radius.
	DefaultRadius = "50km"

	searchMaxResults  = 25
	channelMaxResults = 50
)

// VideoProvider is the upstream search API contract consumed by the
// search service. Search failures are fatal to the request; the details
// lookups are best-effort and report missing ids by omission.
type VideoProvider interface {
	Search(ctx context.Context, p youtube.SearchParams) ([]youtube.SearchItem, error)
	VideoDetails(ctx context.Context, ids []string) map[string]youtube.VideoDetails
	ChannelDetails(ctx context.Context, ids []string) map[string]youtube.ChannelInfo
}

type SearchService struct {
	provider          VideoProvider
	regionCode        string
	relevanceLanguage string
}

func NewSearchService(provider VideoProvider, regionCode, relevanceLanguage string) *SearchService {
	return &SearchService{
		provider:          provider,
		regionCode:        regionCode,
		relevanceLanguage: relevanceLanguage,
	}
}

// Search runs the full pipeline: one geo search, two concurrent metadata
// fan-outs, then classification into related channels and other videos.
func (s *SearchService) Search(ctx context.Context, req model.SearchRequest) (*model.ClassificationResult, error) {
	region := s.regionCode
	if req.RegionCode != "" {
		region = req.RegionCode
	}

	items, err := s.provider.Search(ctx, youtube.SearchParams{
		Query:             req.Query,
		Lat:               *req.Lat,
		Lon:               *req.Lon,
		Radius:            req.Radius,
		MaxResults:        searchMaxResults,
		RegionCode:        region,
		RelevanceLanguage: s.relevanceLanguage,
	})
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}

	// No matches is a defined outcome, not an error. Skip enrichment.
	if len(items) == 0 {
		empty := Classify(nil, nil, nil, ChannelThreshold)
		return &empty, nil
	}

	videoIDs, channelIDs := collectIDs(items)

	// The two fan-outs only need the search results, not each other.
	var (
		videoMeta   map[string]youtube.VideoDetails
		channelMeta map[string]youtube.ChannelInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		videoMeta = s.provider.VideoDetails(gctx, videoIDs)
		return nil
	})
	g.Go(func() error {
		channelMeta = s.provider.ChannelDetails(gctx, channelIDs)
		return nil
	})
	// Enrichment is best-effort; the goroutines never return errors.
	_ = g.Wait()

	result := Classify(items, videoMeta, channelMeta, ChannelThreshold)
	return &result, nil
}

// ChannelVideos runs a channel-scoped geo search and returns the flat
// enriched list in upstream order. No channel enrichment or classification.
func (s *SearchService) ChannelVideos(ctx context.Context, req model.ChannelVideosRequest) ([]model.EnrichedVideo, error) {
	items, err := s.provider.Search(ctx, youtube.SearchParams{
		Query:             req.Query,
		ChannelID:         req.ChannelID,
		Lat:               *req.Lat,
		Lon:               *req.Lon,
		Radius:            req.Radius,
		MaxResults:        channelMaxResults,
		RegionCode:        s.regionCode,
		RelevanceLanguage: s.relevanceLanguage,
	})
	if err != nil {
		return nil, fmt.Errorf("channel video search: %w", err)
	}

	if len(items) == 0 {
		return []model.EnrichedVideo{}, nil
	}

	videoIDs, _ := collectIDs(items)
	videoMeta := s.provider.VideoDetails(ctx, videoIDs)

	videos := make([]model.EnrichedVideo, 0, len(items))
	for _, item := range items {
		if item.Kind != "video" || item.VideoID == "" {
			continue
		}
		videos = append(videos, enrichVideo(item, videoMeta))
	}
	return videos, nil
}

// collectIDs returns the unique video ids and unique channel ids referenced
// by the search results, each in first-seen order.
func collectIDs(items []youtube.SearchItem) (videoIDs, channelIDs []string) {
	seenVideos := make(map[string]bool, len(items))
	seenChannels := make(map[string]bool, len(items))
	for _, item := range items {
		if item.VideoID != "" && !seenVideos[item.VideoID] {
			seenVideos[item.VideoID] = true
			videoIDs = append(videoIDs, item.VideoID)
		}
		if item.ChannelID != "" && !seenChannels[item.ChannelID] {
			seenChannels[item.ChannelID] = true
			channelIDs = append(channelIDs, item.ChannelID)
		}
	}
	return videoIDs, channelIDs
}
