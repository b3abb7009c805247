package server

import (
	"net/http"
	"testing"

	"gotolinks/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBlock(t *testing.T, app *fiber.App, token string, blockType models.BlockType, data models.BlockData) models.ProfileBlock {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/profile/blocks", token, map[string]any{
		"type": blockType,
		"data": data,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var block models.ProfileBlock
	decodeBody(t, resp, &block)
	return block
}

func TestAddBlock_AppendsWithDensePositions(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	first := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "Journal", URL: "https://example.com/journal"})
	second := addBlock(t, app, token, models.BlockTypeRetreat, models.BlockData{Title: "Bali Retreat"})

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddBlock_RejectsUnknownType(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	req := jsonRequest(t, http.MethodPost, "/api/profile/blocks", token, map[string]any{
		"type": "carousel",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUpdateBlock_MergesPatch(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	block := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "Journal", URL: "https://example.com/journal"})

	req := jsonRequest(t, http.MethodPatch, "/api/profile/blocks/"+block.ID, token, map[string]string{
		"title": "Moon Journal",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	require.Len(t, profile.Blocks, 1)
	assert.Equal(t, "Moon Journal", profile.Blocks[0].Data.Title)
	assert.Equal(t, "https://example.com/journal", profile.Blocks[0].Data.URL)
}

func TestUpdateBlock_UnknownIDIs404(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	req := jsonRequest(t, http.MethodPatch, "/api/profile/blocks/no-such-block", token, map[string]string{
		"title": "x",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "BLOCK_NOT_FOUND", body.Code)
}

func TestDeleteBlock_RenumbersRemaining(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "A"})
	victim := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "B"})
	addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "C"})

	req := jsonRequest(t, http.MethodDelete, "/api/profile/blocks/"+victim.ID, token, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	require.Len(t, profile.Blocks, 2)
	assert.Equal(t, "A", profile.Blocks[0].Data.Title)
	assert.Equal(t, 0, profile.Blocks[0].Position)
	assert.Equal(t, "C", profile.Blocks[1].Data.Title)
	assert.Equal(t, 1, profile.Blocks[1].Position)
}

func TestMoveBlock_UpSwapsNeighbors(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "A"})
	second := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "B"})

	req := jsonRequest(t, http.MethodPost, "/api/profile/blocks/"+second.ID+"/move", token, map[string]string{
		"direction": "up",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "B", profile.Blocks[0].Data.Title)
	assert.Equal(t, "A", profile.Blocks[1].Data.Title)
}

func TestMoveBlock_BoundaryIsNoOp(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	first := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "A"})
	addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "B"})

	req := jsonRequest(t, http.MethodPost, "/api/profile/blocks/"+first.ID+"/move", token, map[string]string{
		"direction": "up",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "A", profile.Blocks[0].Data.Title)
	assert.Equal(t, "B", profile.Blocks[1].Data.Title)
}

func TestMoveBlock_RejectsBadDirection(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")
	block := addBlock(t, app, token, models.BlockTypeLink, models.BlockData{Title: "A"})

	req := jsonRequest(t, http.MethodPost, "/api/profile/blocks/"+block.ID+"/move", token, map[string]string{
		"direction": "sideways",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
