package service

import (
	"context"
	"testing"

	"gotolinks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	repo := &stubStatsRepo{
		getByUserAndPeriod: func(_ context.Context, userID string, period models.StatsPeriod) (*models.Stats, error) {
			if period != models.StatsPeriod7d {
				return nil, models.NewNotFoundError("stats", userID)
			}
			return &models.Stats{
				UserID:        userID,
				Period:        period,
				ProfileViews:  342,
				LinkClicks:    128,
				TopLinkTitle:  "Book a Private Session",
				TopLinkClicks: 45,
			}, nil
		},
	}
	svc := NewStatsService(repo)

	dto, err := svc.GetStats(context.Background(), "user-1", models.StatsPeriod7d)
	require.NoError(t, err)
	assert.Equal(t, 342, dto.ProfileViews)
	assert.Equal(t, 128, dto.LinkClicks)
	assert.Equal(t, "Book a Private Session", dto.TopClickedLink.Title)
	assert.Equal(t, 45, dto.TopClickedLink.Clicks)
}

func TestStatsService_EmptyPeriodDefaultsToSevenDays(t *testing.T) {
	var seen models.StatsPeriod
	repo := &stubStatsRepo{
		getByUserAndPeriod: func(_ context.Context, userID string, period models.StatsPeriod) (*models.Stats, error) {
			seen = period
			return &models.Stats{UserID: userID, Period: period}, nil
		},
	}
	svc := NewStatsService(repo)

	_, err := svc.GetStats(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatsPeriod7d, seen)
}

func TestStatsService_RejectsUnknownPeriod(t *testing.T) {
	svc := NewStatsService(&stubStatsRepo{})

	_, err := svc.GetStats(context.Background(), "user-1", "90d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period")
}

func TestStatsService_MissingAggregatesYieldZeroes(t *testing.T) {
	repo := &stubStatsRepo{
		getByUserAndPeriod: func(_ context.Context, userID string, _ models.StatsPeriod) (*models.Stats, error) {
			return nil, models.NewNotFoundError("stats", userID)
		},
	}
	svc := NewStatsService(repo)

	dto, err := svc.GetStats(context.Background(), "user-new", models.StatsPeriod30d)
	require.NoError(t, err)
	assert.Equal(t, models.StatsPeriod30d, dto.Period)
	assert.Zero(t, dto.ProfileViews)
	assert.Zero(t, dto.LinkClicks)
	assert.Empty(t, dto.TopClickedLink.Title)
	assert.Zero(t, dto.TopClickedLink.Clicks)
}
