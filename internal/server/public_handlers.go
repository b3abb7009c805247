package server

import (
	"gotolinks/internal/middleware"
	"gotolinks/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicProfile handles GET /api/profiles/:handle
// @Summary Get a public profile page
// @Description Resolve a handle to its rendered page view: resolved theme, ordered blocks, derived links
// @Tags public
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 200 {object} render.ProfileView
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{handle} [get]
func (s *Server) GetPublicProfile(c *fiber.Ctx) error {
	handle := c.Params("handle")

	view, err := s.profileService.GetPublicProfile(c.Context(), handle)
	if err != nil {
		return respondAppError(c, err)
	}

	middleware.ProfileViews.WithLabelValues(handle).Inc()
	return c.JSON(view)
}

// RecordProfileView handles POST /api/profiles/:handle/view
// @Summary Record a page view
// @Description Count a public page load. View aggregation happens outside this service.
// @Tags public
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 202 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{handle}/view [post]
func (s *Server) RecordProfileView(c *fiber.Ctx) error {
	handle := c.Params("handle")

	user, err := s.userRepo.GetByHandle(c.Context(), handle)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("profile", handle))
	}

	middleware.ProfileViews.WithLabelValues(handle).Inc()
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "View recorded"})
}

// GetThemes handles GET /api/themes
// @Summary List page themes
// @Description Return the available themes with their presentation tokens
// @Tags public
// @Produce json
// @Success 200 {array} models.Theme
// @Router /themes [get]
func (s *Server) GetThemes(c *fiber.Ctx) error {
	return c.JSON(s.profileService.Themes())
}
