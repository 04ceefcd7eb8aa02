package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	var req model.SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	// Validation happens before any upstream call. A coordinate of 0 is
	// rejected the same as a missing one.
	if req.Query == "" || !hasCoordinates(req.Lat, req.Lon) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS",
			"query, lat and lon are required")
	}

	radius, errMsg := middleware.ValidateRadius(req.Radius)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RADIUS", errMsg)
	}
	if radius == "" {
		radius = service.DefaultRadius
	}
	req.Radius = radius

	results, err := h.svc.Search(c.Context(), req)
	if err != nil {
		countSearch("error")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR",
			"Video search failed")
	}

	if len(results.RelatedChannels) == 0 && len(results.OtherVideos) == 0 {
		countSearch("empty")
	} else {
		countSearch("success")
	}

	return c.JSON(model.SearchResponse{
		Status:     "success",
		SearchTerm: req.Query,
		Geolocation: model.Geolocation{
			Lat:    *req.Lat,
			Lon:    *req.Lon,
			Radius: req.Radius,
		},
		Results: *results,
	})
}

// ChannelVideos handles POST /api/channel-videos.
func (h *SearchHandler) ChannelVideos(c fiber.Ctx) error {
	var req model.ChannelVideosRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	channelID, errMsg := middleware.ValidateChannelID(req.ChannelID)
	if errMsg != "" || !hasCoordinates(req.Lat, req.Lon) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS",
			"channelId, lat and lon are required")
	}
	req.ChannelID = channelID

	radius, errMsg := middleware.ValidateRadius(req.Radius)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RADIUS", errMsg)
	}
	if radius == "" {
		radius = service.DefaultRadius
	}
	req.Radius = radius

	videos, err := h.svc.ChannelVideos(c.Context(), req)
	if err != nil {
		countSearch("error")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR",
			"Channel video search failed")
	}
	countSearch("success")

	return c.JSON(model.ChannelVideosResponse{
		Status:    "success",
		ChannelID: req.ChannelID,
		Geolocation: model.Geolocation{
			Lat:    *req.Lat,
			Lon:    *req.Lon,
			Radius: req.Radius,
		},
		Videos: videos,
	})
}

func hasCoordinates(lat, lon *float64) bool {
	return lat != nil && lon != nil && *lat != 0 && *lon != 0
}

// countSearch is nil-safe so handler tests can run without InitMetrics.
func countSearch(outcome string) {
	if Metrics.SearchesTotal != nil {
		Metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	}
}
