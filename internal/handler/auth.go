package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.AuthRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_EMAIL", errMsg)
	}
	if errMsg := middleware.ValidatePassword(req.Password); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PASSWORD", errMsg)
	}

	resp, err := h.svc.Register(c.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "USER_EXISTS",
				"An account with this email already exists")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.AuthRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	email, errMsg := middleware.ValidateEmail(req.Email)
	if errMsg != "" || req.Password == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS",
			"email and password are required")
	}

	resp, err := h.svc.Login(c.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS",
				"Invalid email or password")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to log in")
	}

	return c.JSON(resp)
}
