package service

import (
	"context"

	"gotolinks/internal/models"
	"gotolinks/internal/render"
	"gotolinks/internal/repository"
)

// ProfileService serves the public, read-only side of profiles.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService wires a profile service over the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetPublicProfile resolves a handle to its rendered public page view.
func (s *ProfileService) GetPublicProfile(ctx context.Context, handle string) (*render.ProfileView, error) {
	profile, err := s.profileRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	view := render.Profile(handle, profile)
	return &view, nil
}

// GetProfileForUser returns the persisted profile owned by userID.
func (s *ProfileService) GetProfileForUser(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// Themes lists the available page themes.
func (s *ProfileService) Themes() []models.Theme {
	return models.Themes()
}
