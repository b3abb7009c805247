package server

import (
	"gotolinks/internal/editor"
	"gotolinks/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddBlock handles POST /api/profile/blocks
// @Summary Add a block
// @Description Append a new block at the end of the profile's block list
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{type=string,data=models.BlockData} true "Block to add"
// @Success 201 {object} models.ProfileBlock
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/blocks [post]
func (s *Server) AddBlock(c *fiber.Ctx) error {
	var req struct {
		Type models.BlockType `json:"type"`
		Data models.BlockData `json:"data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	block, err := s.editorService.AddBlock(c.Context(), currentUserID(c), req.Type, req.Data)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

// UpdateBlock handles PATCH /api/profile/blocks/:id
// @Summary Update a block
// @Description Merge a partial data patch into one block; omitted fields keep their value
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Param request body models.BlockDataPatch true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/blocks/{id} [patch]
func (s *Server) UpdateBlock(c *fiber.Ctx) error {
	var patch models.BlockDataPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.editorService.UpdateBlock(c.Context(), currentUserID(c), c.Params("id"), patch)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteBlock handles DELETE /api/profile/blocks/:id
// @Summary Delete a block
// @Description Remove a block; the blocks after it shift up to close the gap
// @Tags blocks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/blocks/{id} [delete]
func (s *Server) DeleteBlock(c *fiber.Ctx) error {
	profile, err := s.editorService.DeleteBlock(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// MoveBlock handles POST /api/profile/blocks/:id/move
// @Summary Move a block
// @Description Swap a block with its neighbor. Moving past the list boundary is a no-op.
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Param request body object{direction=string} true "Direction: up or down"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/blocks/{id}/move [post]
func (s *Server) MoveBlock(c *fiber.Ctx) error {
	var req struct {
		Direction editor.MoveDirection `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.editorService.MoveBlock(c.Context(), currentUserID(c), c.Params("id"), req.Direction)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}
