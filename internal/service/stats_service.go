package service

import (
	"context"

	"gotolinks/internal/models"
	"gotolinks/internal/repository"
)

// StatsService serves dashboard stats. Aggregates are computed elsewhere;
// this service only reads them.
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService wires a stats service over the given repository.
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetStats returns the user's stats for the given period. An empty period
// defaults to the trailing seven days. Users without aggregates yet get a
// zero-valued response rather than an error.
func (s *StatsService) GetStats(ctx context.Context, userID string, period models.StatsPeriod) (*models.StatsDTO, error) {
	if period == "" {
		period = models.StatsPeriod7d
	}
	if !period.Valid() {
		return nil, models.NewValidationError("period must be one of 7d, 30d, all")
	}

	stats, err := s.statsRepo.GetByUserAndPeriod(ctx, userID, period)
	if err != nil {
		if models.IsNotFound(err) {
			dto := (&models.Stats{UserID: userID, Period: period}).DTO()
			return &dto, nil
		}
		return nil, err
	}

	dto := stats.DTO()
	return &dto, nil
}
