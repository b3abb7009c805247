package server

import (
	"gotolinks/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /api/stats
// @Summary Get dashboard stats
// @Description Return the creator's view and click aggregates for a period (7d, 30d, all; default 7d)
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "Aggregation period" Enums(7d, 30d, all)
// @Success 200 {object} models.StatsDTO
// @Failure 400 {object} models.ErrorResponse
// @Router /stats [get]
func (s *Server) GetStats(c *fiber.Ctx) error {
	period := models.StatsPeriod(c.Query("period"))

	dto, err := s.statsService.GetStats(c.Context(), currentUserID(c), period)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(dto)
}
