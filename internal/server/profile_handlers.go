package server

import (
	"gotolinks/internal/models"
	"gotolinks/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile
// @Summary Get own profile
// @Description Return the authenticated creator's working copy, including unsaved edits
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.editorService.Snapshot(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/profile
// @Summary Update profile details
// @Description Replace the profile's header fields and theme; blocks are untouched
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateDetailsInput true "Profile details"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Router /profile [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req service.UpdateDetailsInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.editorService.UpdateDetails(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// SaveProfile handles POST /api/profile/save
// @Summary Save profile now
// @Description Persist pending edits immediately instead of waiting for autosave
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/save [post]
func (s *Server) SaveProfile(c *fiber.Ctx) error {
	profile, err := s.editorService.Save(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// CloseEditorSession handles DELETE /api/profile/session
// @Summary Close the editing session
// @Description Flush pending edits and discard the in-memory working copy
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /profile/session [delete]
func (s *Server) CloseEditorSession(c *fiber.Ctx) error {
	if err := s.editorService.CloseSession(c.Context(), currentUserID(c)); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session closed"})
}
