package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearch_RequestParams(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), SearchParams{
		Query:             "tacos",
		Lat:               19.4326,
		Lon:               -99.1332,
		Radius:            "50km",
		MaxResults:        25,
		RegionCode:        "MX",
		RelevanceLanguage: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"part":              "snippet",
		"type":              "video",
		"q":                 "tacos",
		"location":          "19.432600,-99.133200",
		"locationRadius":    "50km",
		"maxResults":        "25",
		"key":               "test-key",
		"regionCode":        "MX",
		"relevanceLanguage": "es",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if _, ok := gotQuery["channelId"]; ok {
		t.Error("channelId must be omitted when empty")
	}
}

func TestSearch_ThumbnailFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"id":{"videoId":"v1"},"snippet":{"title":"has default","channelId":"chA",
			 "thumbnails":{"default":{"url":"def.jpg"},"medium":{"url":"med.jpg"}}}},
			{"id":{"videoId":"v2"},"snippet":{"title":"medium only","channelId":"chA",
			 "thumbnails":{"medium":{"url":"med2.jpg"}}}}
		]}`)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	items, err := c.Search(context.Background(), SearchParams{Query: "x", MaxResults: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ThumbnailURL != "def.jpg" {
		t.Errorf("v1 thumbnail = %q, want default", items[0].ThumbnailURL)
	}
	if items[1].ThumbnailURL != "med2.jpg" {
		t.Errorf("v2 thumbnail = %q, want medium fallback", items[1].ThumbnailURL)
	}
}

func TestSearch_KindDetection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"id":{"videoId":"v1"},"snippet":{"channelId":"chA"}},
			{"id":{"channelId":"chB"},"snippet":{"channelId":"chB"}}
		]}`)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	items, err := c.Search(context.Background(), SearchParams{Query: "x", MaxResults: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Kind != "video" || items[1].Kind != "channel" {
		t.Errorf("kinds = %s, %s; want video, channel", items[0].Kind, items[1].Kind)
	}
}

func TestVideoDetails_BatchesOverFiftyIDs(t *testing.T) {
	var calls []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		calls = append(calls, len(ids))
		var b strings.Builder
		b.WriteString(`{"items":[`)
		for i, id := range ids {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"id":%q,"statistics":{"viewCount":"10"},"contentDetails":{"duration":"PT1M"}}`, id)
		}
		b.WriteString(`]}`)
		fmt.Fprint(w, b.String())
	}))
	defer srv.Close()

	ids := make([]string, 60)
	for i := range ids {
		ids[i] = fmt.Sprintf("vid%02d", i)
	}

	c := NewClient("k", WithBaseURL(srv.URL))
	details := c.VideoDetails(context.Background(), ids)

	// 60 ids split into exactly two calls of 50 and 10.
	if len(calls) != 2 || calls[0] != 50 || calls[1] != 10 {
		t.Errorf("batch sizes = %v, want [50 10]", calls)
	}
	if len(details) != 60 {
		t.Errorf("details = %d ids, want 60", len(details))
	}
	if d := details["vid00"]; d.Duration != "PT1M" || d.ViewCount != "10" {
		t.Errorf("vid00 = %+v", d)
	}
}

func TestVideoDetails_FailedBatchDegrades(t *testing.T) {
	var call int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call++
		if call == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		var b strings.Builder
		b.WriteString(`{"items":[`)
		for i, id := range ids {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"id":%q,"contentDetails":{"duration":"PT1M"}}`, id)
		}
		b.WriteString(`]}`)
		fmt.Fprint(w, b.String())
	}))
	defer srv.Close()

	ids := make([]string, 60)
	for i := range ids {
		ids[i] = fmt.Sprintf("vid%02d", i)
	}

	c := NewClient("k", WithBaseURL(srv.URL))
	details := c.VideoDetails(context.Background(), ids)

	// The first batch of 50 failed; only the second batch's 10 ids are
	// present. No error escapes.
	if len(details) != 10 {
		t.Errorf("details = %d ids, want 10", len(details))
	}
	if _, ok := details["vid00"]; ok {
		t.Error("failed batch must leave its ids absent")
	}
	if _, ok := details["vid59"]; !ok {
		t.Error("surviving batch must be merged")
	}
}

func TestChannelDetails_ThumbnailFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/channels" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"items":[
			{"id":"chA","snippet":{"title":"A","thumbnails":{"medium":{"url":"med.jpg"}}}}
		]}`)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	info := c.ChannelDetails(context.Background(), []string{"chA"})

	if info["chA"].Title != "A" {
		t.Errorf("title = %q", info["chA"].Title)
	}
	if info["chA"].ThumbnailURL != "med.jpg" {
		t.Errorf("thumbnail = %q, want medium fallback", info["chA"].ThumbnailURL)
	}
}

func TestSearch_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"quota"}}`)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), SearchParams{Query: "x", MaxResults: 25}); err == nil {
		t.Fatal("expected error on 403")
	}
}

func TestCallObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	type call struct {
		endpoint string
		status   int
	}
	var observed []call
	c := NewClient("k", WithBaseURL(srv.URL), WithCallObserver(func(endpoint string, status int) {
		observed = append(observed, call{endpoint, status})
	}))

	_, _ = c.Search(context.Background(), SearchParams{Query: "x", MaxResults: 25})
	c.VideoDetails(context.Background(), []string{"v1"})

	if len(observed) != 2 {
		t.Fatalf("observed calls = %d, want 2", len(observed))
	}
	if observed[0].endpoint != "search" || observed[0].status != 200 {
		t.Errorf("first call = %+v", observed[0])
	}
	if observed[1].endpoint != "videos" {
		t.Errorf("second call = %+v", observed[1])
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []int
	}{
		{"empty", 0, 50, nil},
		{"under one chunk", 10, 50, []int{10}},
		{"exact boundary", 50, 50, []int{50}},
		{"one over", 51, 50, []int{50, 1}},
		{"several", 120, 50, []int{50, 50, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, tt.n)
			for i := range ids {
				ids[i] = fmt.Sprintf("id%d", i)
			}
			chunks := Chunk(ids, tt.size)
			if len(chunks) != len(tt.want) {
				t.Fatalf("chunks = %d, want %d", len(chunks), len(tt.want))
			}
			for i, want := range tt.want {
				if len(chunks[i]) != want {
					t.Errorf("chunk %d size = %d, want %d", i, len(chunks[i]), want)
				}
			}
		})
	}
}
