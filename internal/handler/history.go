package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List handles GET /api/history?limit=N.
func (h *HistoryHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	limit := fiber.Query[int](c, "limit")
	entries, err := h.svc.List(c.Context(), userID, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
	}
	return c.JSON(entries)
}

// Add handles POST /api/history. Re-watching a video updates the existing
// entry instead of creating a new one.
func (h *HistoryHandler) Add(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	payload, err := bindVideoPayload(c)
	if err != nil {
		return err
	}

	entry, err := h.svc.Add(c.Context(), userID, *payload)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record history")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Delete handles DELETE /api/history/:historyId.
func (h *HistoryHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	historyID, err := strconv.ParseInt(c.Params("historyId"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "historyId must be a number")
	}

	deleted, err := h.svc.Remove(c.Context(), userID, historyID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete history entry")
	}
	if !deleted {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "History entry not found")
	}
	return c.JSON(fiber.Map{"message": "History entry deleted"})
}

// Clear handles DELETE /api/history.
func (h *HistoryHandler) Clear(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	count, err := h.svc.Clear(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear history")
	}
	return c.JSON(fiber.Map{"message": "History cleared", "deleted": count})
}

// UpdateProgress handles PUT /api/history/progress.
func (h *HistoryHandler) UpdateProgress(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	var req model.ProgressUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" || req.Progress == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "videoId and progress are required")
	}
	if *req.Progress < 0 || *req.Progress > 100 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "progress must be between 0 and 100")
	}

	updated, err := h.svc.UpdateProgress(c.Context(), userID, videoID, *req.Progress)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update progress")
	}
	if !updated {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not in history")
	}
	return c.JSON(fiber.Map{"message": "Progress updated"})
}
