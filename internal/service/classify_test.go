package service

import (
	"reflect"
	"testing"

	"github.com/Michelle21160775/yt-geo-project/internal/youtube"
)

func videoItem(videoID, channelID, channelTitle string) youtube.SearchItem {
	return youtube.SearchItem{
		Kind:         "video",
		VideoID:      videoID,
		ChannelID:    channelID,
		Title:        "title-" + videoID,
		ChannelTitle: channelTitle,
		PublishedAt:  "2024-01-01T00:00:00Z",
		ThumbnailURL: "https://i.ytimg.com/" + videoID + ".jpg",
	}
}

func TestClassify_GroupsChannelsAtThreshold(t *testing.T) {
	// Channel A contributes 3 results, B contributes exactly 2 (inclusive
	// threshold), C contributes 1.
	items := []youtube.SearchItem{
		videoItem("a1", "chA", "Channel A"),
		videoItem("b1", "chB", "Channel B"),
		videoItem("a2", "chA", "Channel A"),
		videoItem("c1", "chC", "Channel C"),
		videoItem("b2", "chB", "Channel B"),
		videoItem("a3", "chA", "Channel A"),
	}
	channels := map[string]youtube.ChannelInfo{
		"chA": {Title: "Channel A Official", ThumbnailURL: "https://yt3.ggpht.com/chA.jpg"},
		"chB": {Title: "Channel B Official", ThumbnailURL: "https://yt3.ggpht.com/chB.jpg"},
	}

	result := Classify(items, nil, channels, ChannelThreshold)

	if len(result.RelatedChannels) != 2 {
		t.Fatalf("related channels = %d, want 2", len(result.RelatedChannels))
	}
	if len(result.OtherVideos) != 1 {
		t.Fatalf("other videos = %d, want 1", len(result.OtherVideos))
	}

	// First-seen channel order: A before B.
	if result.RelatedChannels[0].ChannelID != "chA" || result.RelatedChannels[1].ChannelID != "chB" {
		t.Errorf("channel order = %s, %s; want chA, chB",
			result.RelatedChannels[0].ChannelID, result.RelatedChannels[1].ChannelID)
	}

	chA := result.RelatedChannels[0]
	if chA.ChannelTitle != "Channel A Official" {
		t.Errorf("channel title = %q, want enriched title", chA.ChannelTitle)
	}
	if chA.ChannelThumbnailURL != "https://yt3.ggpht.com/chA.jpg" {
		t.Errorf("channel thumbnail = %q", chA.ChannelThumbnailURL)
	}

	// Videos keep upstream order within their group.
	gotIDs := []string{}
	for _, v := range chA.Videos {
		gotIDs = append(gotIDs, v.VideoID)
	}
	if !reflect.DeepEqual(gotIDs, []string{"a1", "a2", "a3"}) {
		t.Errorf("chA video order = %v", gotIDs)
	}

	// Nested videos lose their channel title; the parent record has it.
	for _, v := range chA.Videos {
		if v.ChannelTitle != "" {
			t.Errorf("nested video %s kept channel_title %q", v.VideoID, v.ChannelTitle)
		}
	}

	// Singleton keeps its channel title.
	if result.OtherVideos[0].VideoID != "c1" {
		t.Errorf("other video = %s, want c1", result.OtherVideos[0].VideoID)
	}
	if result.OtherVideos[0].ChannelTitle != "Channel C" {
		t.Errorf("other video channel_title = %q, want Channel C", result.OtherVideos[0].ChannelTitle)
	}
}

func TestClassify_EnrichmentFallbacks(t *testing.T) {
	// Channel enrichment missing entirely: fall back to the embedded
	// channel title and an empty thumbnail.
	items := []youtube.SearchItem{
		videoItem("a1", "chA", "Embedded A"),
		videoItem("a2", "chA", "Embedded A"),
	}

	result := Classify(items, nil, nil, ChannelThreshold)

	if len(result.RelatedChannels) != 1 {
		t.Fatalf("related channels = %d, want 1", len(result.RelatedChannels))
	}
	ch := result.RelatedChannels[0]
	if ch.ChannelTitle != "Embedded A" {
		t.Errorf("channel title = %q, want embedded fallback", ch.ChannelTitle)
	}
	if ch.ChannelThumbnailURL != "" {
		t.Errorf("channel thumbnail = %q, want empty fallback", ch.ChannelThumbnailURL)
	}
}

func TestClassify_MissingVideoMetadataDefaults(t *testing.T) {
	items := []youtube.SearchItem{
		videoItem("known", "chA", "A"),
		videoItem("unknown", "chB", "B"),
	}
	videos := map[string]youtube.VideoDetails{
		"known": {Duration: "PT4M13S", ViewCount: "1234"},
	}

	result := Classify(items, videos, nil, ChannelThreshold)

	if len(result.OtherVideos) != 2 {
		t.Fatalf("other videos = %d, want 2", len(result.OtherVideos))
	}

	known := result.OtherVideos[0]
	if known.Duration != "PT4M13S" || known.ViewCount != 1234 {
		t.Errorf("known video = %q/%d, want PT4M13S/1234", known.Duration, known.ViewCount)
	}

	// A video absent from the enrichment map is kept with safe defaults.
	unknown := result.OtherVideos[1]
	if unknown.Duration != "PT0S" || unknown.ViewCount != 0 {
		t.Errorf("unknown video = %q/%d, want PT0S/0", unknown.Duration, unknown.ViewCount)
	}
}

func TestClassify_InvalidViewCountDefaultsToZero(t *testing.T) {
	items := []youtube.SearchItem{videoItem("v1", "chA", "A")}
	videos := map[string]youtube.VideoDetails{
		"v1": {Duration: "PT1M", ViewCount: "not-a-number"},
	}

	result := Classify(items, videos, nil, ChannelThreshold)

	if got := result.OtherVideos[0].ViewCount; got != 0 {
		t.Errorf("view count = %d, want 0", got)
	}
	if got := result.OtherVideos[0].Duration; got != "PT1M" {
		t.Errorf("duration = %q, want PT1M", got)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	result := Classify(nil, nil, nil, ChannelThreshold)

	if result.RelatedChannels == nil || result.OtherVideos == nil {
		t.Fatal("buckets must be empty slices, not nil")
	}
	if len(result.RelatedChannels) != 0 || len(result.OtherVideos) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestClassify_SkipsChannelKindItems(t *testing.T) {
	items := []youtube.SearchItem{
		{Kind: "channel", ChannelID: "chA", ChannelTitle: "A"},
		videoItem("v1", "chA", "A"),
	}

	result := Classify(items, nil, nil, ChannelThreshold)

	// The channel-kind item does not count toward the threshold.
	if len(result.RelatedChannels) != 0 {
		t.Errorf("related channels = %d, want 0", len(result.RelatedChannels))
	}
	if len(result.OtherVideos) != 1 {
		t.Errorf("other videos = %d, want 1", len(result.OtherVideos))
	}
}

func TestClassify_OtherVideosFirstSeenChannelOrder(t *testing.T) {
	// Singletons land in first-seen channel order even when interleaved.
	items := []youtube.SearchItem{
		videoItem("x1", "chX", "X"),
		videoItem("y1", "chY", "Y"),
		videoItem("z1", "chZ", "Z"),
	}

	result := Classify(items, nil, nil, ChannelThreshold)

	gotIDs := []string{}
	for _, v := range result.OtherVideos {
		gotIDs = append(gotIDs, v.VideoID)
	}
	if !reflect.DeepEqual(gotIDs, []string{"x1", "y1", "z1"}) {
		t.Errorf("other video order = %v", gotIDs)
	}
}
