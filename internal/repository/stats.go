package repository

import (
	"context"
	"errors"

	"gotolinks/internal/cache"
	"gotolinks/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository reads the aggregates maintained by the analytics pipeline.
// Upsert exists for seeding and backfills only.
type StatsRepository interface {
	GetByUserAndPeriod(ctx context.Context, userID string, period models.StatsPeriod) (*models.Stats, error)
	Upsert(ctx context.Context, stats *models.Stats) error
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository returns a new StatsRepository implementation.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByUserAndPeriod(ctx context.Context, userID string, period models.StatsPeriod) (*models.Stats, error) {
	var stats models.Stats
	key := cache.StatsKey(userID, string(period))

	err := cache.Aside(ctx, key, &stats, cache.StatsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND period = ?", userID, period).
			First(&stats).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Stats", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) Upsert(ctx context.Context, stats *models.Stats) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"profile_views", "link_clicks", "top_link_title", "top_link_clicks", "updated_at",
		}),
	}).Create(stats).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateStats(ctx, stats.UserID, string(stats.Period))
	return nil
}
