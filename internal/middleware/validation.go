package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxVideoIDLen   = 32  // favorites.video_id VARCHAR(32)
	MaxChannelIDLen = 64  // YouTube channel IDs are 24 chars, with headroom
	MaxEmailLen     = 255 // users.email VARCHAR(255)
	MaxCommentLen   = 1000
	MaxUserNameLen  = 100 // comments.user_name VARCHAR(100)
	MinPasswordLen  = 6
)

var (
	// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches YouTube channel IDs.
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// radiusRe matches YouTube locationRadius values (e.g. "50km", "1500m", "0.75mi").
	radiusRe = regexp.MustCompile(`^\d+(\.\d+)?(m|km|ft|mi)$`)
	// emailRe is a loose shape check; real validation happens at delivery.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed and within DB limits.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 32 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 64 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateRadius checks a locationRadius value. Empty is allowed; the
// caller applies the default.
func ValidateRadius(radius string) (string, string) {
	radius = strings.TrimSpace(radius)
	if radius == "" {
		return "", ""
	}
	if !radiusRe.MatchString(radius) {
		return "", "radius must be a number followed by m, km, ft or mi"
	}
	return radius, ""
}

// ValidateEmail normalizes and shape-checks an email address.
func ValidateEmail(email string) (string, string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email must be at most 255 characters"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not valid"
	}
	return email, ""
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) string {
	if len(password) < MinPasswordLen {
		return "password must be at least 6 characters"
	}
	return ""
}

// ValidateComment trims and length-checks a feedback comment body.
func ValidateComment(body string) (string, string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", "comment is required"
	}
	if len(body) > MaxCommentLen {
		return "", "comment must be at most 1000 characters"
	}
	return body, ""
}

// ValidateUserName trims and truncates a display name to DB limits.
func ValidateUserName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Anonymous"
	}
	if len(name) > MaxUserNameLen {
		name = name[:MaxUserNameLen]
	}
	return name
}
