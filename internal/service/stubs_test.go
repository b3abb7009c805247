package service

import (
	"context"
	"sync"

	"gotolinks/internal/models"
)

// stubUserRepo implements repository.UserRepository with overridable funcs.
type stubUserRepo struct {
	getByID     func(ctx context.Context, id string) (*models.User, error)
	getByEmail  func(ctx context.Context, email string) (*models.User, error)
	getByHandle func(ctx context.Context, handle string) (*models.User, error)
	create      func(ctx context.Context, user *models.User) error
	update      func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return s.getByHandle(ctx, handle)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}

// stubProfileRepo implements repository.ProfileRepository and records saves.
type stubProfileRepo struct {
	mu          sync.Mutex
	saved       []*models.Profile
	saveErr     error
	getByUserID func(ctx context.Context, userID string) (*models.Profile, error)
	getByHandle func(ctx context.Context, handle string) (*models.Profile, error)
}

func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return s.getByUserID(ctx, userID)
}

func (s *stubProfileRepo) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.getByHandle(ctx, handle)
}

func (s *stubProfileRepo) Create(_ context.Context, _ *models.Profile) error {
	return nil
}

func (s *stubProfileRepo) Save(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, profile.Clone())
	return nil
}

func (s *stubProfileRepo) setSaveErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *stubProfileRepo) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func (s *stubProfileRepo) lastSaved() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return nil
	}
	return s.saved[len(s.saved)-1]
}

// stubStatsRepo implements repository.StatsRepository.
type stubStatsRepo struct {
	getByUserAndPeriod func(ctx context.Context, userID string, period models.StatsPeriod) (*models.Stats, error)
}

func (s *stubStatsRepo) GetByUserAndPeriod(ctx context.Context, userID string, period models.StatsPeriod) (*models.Stats, error) {
	return s.getByUserAndPeriod(ctx, userID, period)
}

func (s *stubStatsRepo) Upsert(_ context.Context, _ *models.Stats) error {
	return nil
}
