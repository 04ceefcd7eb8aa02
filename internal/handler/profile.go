package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type ProfileHandler struct {
	svc *service.UserService
}

func NewProfileHandler(svc *service.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	profile, err := h.svc.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
	}
	return c.JSON(profile)
}

// Update handles PUT /api/profile. Absent fields are left unchanged.
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	var req model.ProfileUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	profile, err := h.svc.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
	}
	return c.JSON(profile)
}

// UpdatePassword handles PUT /api/profile/password.
func (h *ProfileHandler) UpdatePassword(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	var req model.PasswordUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}
	if req.CurrentPassword == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "currentPassword is required")
	}
	if errMsg := middleware.ValidatePassword(req.NewPassword); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PASSWORD", errMsg)
	}

	err := h.svc.UpdatePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Password updated"})
	case errors.Is(err, service.ErrWrongPassword):
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
	case errors.Is(err, service.ErrNoPassword):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "NO_PASSWORD", "Account has no password set")
	case errors.Is(err, pgx.ErrNoRows):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update password")
	}
}
