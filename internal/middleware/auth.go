package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/pkg/jwt"
)

// Locals keys set by the auth middlewares.
const (
	LocalUserID    = "userID"
	LocalUserEmail = "userEmail"
)

// RequireAuth verifies the Bearer token and stores the user identity in
// request locals. Requests without a valid token get a 401.
func RequireAuth(manager *jwt.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authorization token required")
		}

		claims, err := manager.Verify(token)
		if err != nil {
			code := "INVALID_TOKEN"
			if err == jwt.ErrExpiredToken {
				code = "TOKEN_EXPIRED"
			}
			return ErrorResponse(c, fiber.StatusUnauthorized, code, "Invalid or expired token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		return c.Next()
	}
}

// OptionalAuth attaches the user identity when a valid token is present
// but lets anonymous requests through untouched.
func OptionalAuth(manager *jwt.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if claims, err := manager.Verify(token); err == nil {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalUserEmail, claims.Email)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id from locals. The bool is
// false on anonymous requests.
func UserID(c fiber.Ctx) (int64, bool) {
	uid, ok := c.Locals(LocalUserID).(int64)
	return uid, ok
}

// UserEmail returns the authenticated user email from locals.
func UserEmail(c fiber.Ctx) (string, bool) {
	email, ok := c.Locals(LocalUserEmail).(string)
	return email, ok
}

func bearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
