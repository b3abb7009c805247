package server

import (
	"net/http"
	"testing"

	"gotolinks/internal/models"
	"gotolinks/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPublicProfile_RendersSavedState(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedCreator(t, s, "sarah-moon")

	addBlock(t, app, token, models.BlockTypeWhatsApp, models.BlockData{Phone: "+1 (555) 123-4567"})
	addBlock(t, app, token, models.BlockTypeLink, models.BlockData{URL: "https://example.com"})

	saveReq := jsonRequest(t, http.MethodPost, "/api/profile/save", token, nil)
	saveResp, err := app.Test(saveReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, saveResp.StatusCode)
	_ = saveResp.Body.Close()

	req := jsonRequest(t, http.MethodGet, "/api/profiles/sarah-moon", "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view render.ProfileView
	decodeBody(t, resp, &view)
	assert.Equal(t, "sarah-moon", view.Handle)
	assert.Equal(t, models.DefaultTheme, view.Theme.Key)
	require.Len(t, view.Blocks, 2)
	assert.Equal(t, "WhatsApp", view.Blocks[0].Label)
	assert.Equal(t, "https://wa.me/15551234567", view.Blocks[0].Href)
	assert.Equal(t, "Link", view.Blocks[1].Label)
}

func TestGetPublicProfile_UnknownHandle404(t *testing.T) {
	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/profiles/nobody-here", "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRecordProfileView(t *testing.T) {
	s, app := newTestServer(t)
	seedCreator(t, s, "sarah-moon")

	req := jsonRequest(t, http.MethodPost, "/api/profiles/sarah-moon/view", "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	_ = resp.Body.Close()

	missing := jsonRequest(t, http.MethodPost, "/api/profiles/nobody/view", "", nil)
	resp, err = app.Test(missing)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetThemes(t *testing.T) {
	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/themes", "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var themes []models.Theme
	decodeBody(t, resp, &themes)
	require.Len(t, themes, 4)

	keys := make(map[string]bool, len(themes))
	for _, th := range themes {
		keys[th.Key] = true
	}
	assert.True(t, keys["sacred-earth"])
	assert.True(t, keys["zen-minimal"])
	assert.True(t, keys["mystic-teal-gold"])
	assert.True(t, keys["ocean-temple"])
}
