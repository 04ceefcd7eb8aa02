package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	favorites, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
	}
	return c.JSON(favorites)
}

// Add handles POST /api/favorites. Duplicate (user, video) pairs get a 409.
func (h *FavoriteHandler) Add(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	payload, err := bindVideoPayload(c)
	if err != nil {
		return err
	}

	favorite, err := h.svc.Add(c.Context(), userID, *payload)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyFavorite) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_FAVORITE", "Video is already in favorites")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// Delete handles DELETE /api/favorites/:favoriteId.
func (h *FavoriteHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	favoriteID, err := strconv.ParseInt(c.Params("favoriteId"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "favoriteId must be a number")
	}

	deleted, err := h.svc.Remove(c.Context(), userID, favoriteID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete favorite")
	}
	if !deleted {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Favorite not found")
	}
	return c.JSON(fiber.Map{"message": "Favorite deleted"})
}

// Check handles GET /api/favorites/check/:videoId.
func (h *FavoriteHandler) Check(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}

	isFavorite, err := h.svc.IsFavorite(c.Context(), userID, videoID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check favorite")
	}
	return c.JSON(fiber.Map{"isFavorite": isFavorite})
}

// Toggle handles POST /api/favorites/toggle.
func (h *FavoriteHandler) Toggle(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	payload, err := bindVideoPayload(c)
	if err != nil {
		return err
	}

	result, err := h.svc.Toggle(c.Context(), userID, *payload)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle favorite")
	}
	return c.JSON(result)
}

// bindVideoPayload parses and validates the shared video snapshot body used
// by favorites and history writes.
func bindVideoPayload(c fiber.Ctx) (*model.VideoPayload, error) {
	var payload model.VideoPayload
	if err := c.Bind().JSON(&payload); err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}
	videoID, errMsg := middleware.ValidateVideoID(payload.VideoID)
	if errMsg != "" {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}
	payload.VideoID = videoID
	return &payload, nil
}
