package repository

import (
	"context"
	"testing"

	"gotolinks/internal/database"
	"gotolinks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_UpsertAndGet(t *testing.T) {
	db, err := database.OpenEphemeral()
	require.NoError(t, err)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	stats := &models.Stats{
		UserID:        "u-1",
		Period:        models.StatsPeriod7d,
		ProfileViews:  342,
		LinkClicks:    128,
		TopLinkTitle:  "Book a Discovery Call",
		TopLinkClicks: 45,
	}
	require.NoError(t, repo.Upsert(ctx, stats))

	got, err := repo.GetByUserAndPeriod(ctx, "u-1", models.StatsPeriod7d)
	require.NoError(t, err)
	assert.Equal(t, 342, got.ProfileViews)
	assert.Equal(t, 45, got.TopLinkClicks)

	// Upsert overwrites the same (user, period) row.
	stats.ProfileViews = 400
	require.NoError(t, repo.Upsert(ctx, stats))

	got, err = repo.GetByUserAndPeriod(ctx, "u-1", models.StatsPeriod7d)
	require.NoError(t, err)
	assert.Equal(t, 400, got.ProfileViews)

	var count int64
	require.NoError(t, db.Model(&models.Stats{}).Where("user_id = ?", "u-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStatsRepository_GetMissing(t *testing.T) {
	db, err := database.OpenEphemeral()
	require.NoError(t, err)
	repo := NewStatsRepository(db)

	_, err = repo.GetByUserAndPeriod(context.Background(), "u-none", models.StatsPeriodAll)
	assert.True(t, models.IsNotFound(err))
}

func TestStatsDTOShape(t *testing.T) {
	s := models.Stats{
		Period:        models.StatsPeriod7d,
		ProfileViews:  342,
		LinkClicks:    128,
		TopLinkTitle:  "Book a Discovery Call",
		TopLinkClicks: 45,
	}
	dto := s.DTO()
	assert.Equal(t, 342, dto.ProfileViews)
	assert.Equal(t, "Book a Discovery Call", dto.TopClickedLink.Title)
	assert.Equal(t, 45, dto.TopClickedLink.Clicks)
	assert.Equal(t, models.StatsPeriod7d, dto.Period)
}
