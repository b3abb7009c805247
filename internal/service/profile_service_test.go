package service

import (
	"context"
	"testing"

	"gotolinks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetPublicProfileRenders(t *testing.T) {
	profileRepo := &stubProfileRepo{
		getByHandle: func(_ context.Context, handle string) (*models.Profile, error) {
			if handle != "sarah-moon" {
				return nil, models.NewNotFoundError("profile", handle)
			}
			return &models.Profile{
				ID:     "profile-1",
				UserID: "user-1",
				Name:   "Sarah Moon",
				Theme:  "sacred-earth",
				Blocks: []models.ProfileBlock{
					{ID: "b2", Type: models.BlockTypeLink, Position: 1, Data: models.BlockData{Title: "Journal", URL: "https://example.com/journal"}},
					{ID: "b1", Type: models.BlockTypeWhatsApp, Position: 0, Data: models.BlockData{Phone: "+1 (555) 123-4567"}},
				},
			}, nil
		},
	}
	svc := NewProfileService(profileRepo, &stubUserRepo{})

	view, err := svc.GetPublicProfile(context.Background(), "sarah-moon")
	require.NoError(t, err)
	assert.Equal(t, "sarah-moon", view.Handle)
	assert.Equal(t, "sacred-earth", view.Theme.Key)
	require.Len(t, view.Blocks, 2)
	assert.Equal(t, "b1", view.Blocks[0].ID)
	assert.Equal(t, "https://wa.me/15551234567", view.Blocks[0].Href)
	assert.Equal(t, "Journal", view.Blocks[1].Label)
}

func TestProfileService_GetPublicProfileUnknownHandle(t *testing.T) {
	profileRepo := &stubProfileRepo{
		getByHandle: func(_ context.Context, handle string) (*models.Profile, error) {
			return nil, models.NewNotFoundError("profile", handle)
		},
	}
	svc := NewProfileService(profileRepo, &stubUserRepo{})

	_, err := svc.GetPublicProfile(context.Background(), "nobody")
	assert.True(t, models.IsNotFound(err))
}

func TestProfileService_ThemesListsRegistry(t *testing.T) {
	svc := NewProfileService(&stubProfileRepo{}, &stubUserRepo{})

	themes := svc.Themes()
	require.Len(t, themes, 4)

	keys := make([]string, 0, len(themes))
	for _, th := range themes {
		keys = append(keys, th.Key)
	}
	assert.Contains(t, keys, models.DefaultTheme)
}
