package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	// VideoIDLen is the fixed length of platform video IDs.
	VideoIDLen = 11
	// MaxKeywordLen bounds the search keyword.
	MaxKeywordLen = 100
)

// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed. Returns the cleaned
// ID and an empty string, or an error message.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) != VideoIDLen {
		return "", "videoId must be 11 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateKeyword checks the search keyword.
func ValidateKeyword(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "q is required"
	}
	if len(q) > MaxKeywordLen {
		return "", "q must be at most 100 characters"
	}
	return q, ""
}
