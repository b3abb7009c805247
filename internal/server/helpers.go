package server

import (
	"errors"
	"strings"

	"gotolinks/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user id placed in locals by
// AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

// bearerToken extracts the raw token from the Authorization header, or "".
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// respondAppError maps application error codes onto HTTP statuses.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND", "BLOCK_NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "CONFLICT":
			status = fiber.StatusConflict
		}
	}

	return models.RespondWithError(c, status, err)
}
