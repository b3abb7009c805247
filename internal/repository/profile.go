package repository

import (
	"context"
	"errors"

	"gotolinks/internal/cache"
	"gotolinks/internal/models"
	"gotolinks/internal/observability"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their blocks.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db     *gorm.DB
	logger *observability.RepoLogger
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db:     db,
		logger: observability.NewRepoLogger("profiles"),
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByHandle resolves a profile through its owner's handle. The public read
// path is cache-aside; editor writes invalidate the handle key.
func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(handle)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Blocks", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Joins("JOIN users ON users.id = profiles.user_id").
			Where("users.handle = ? AND users.deleted_at IS NULL", handle).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", handle)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Profile already exists for this user")
		}
		return models.NewInternalError(err)
	}
	r.logger.LogWrite(ctx, "create", map[string]interface{}{"profile_id": profile.ID})
	return nil
}

// Save persists the full editor state. Block rows are replaced wholesale
// inside one transaction so stored positions always match the saved order.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	tl := observability.GetTraceLayer()
	ctx, span := tl.TraceRepositoryMethod(ctx, "Save", "profiles")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Profile{}).
			Where("id = ?", profile.ID).
			Updates(map[string]interface{}{
				"name":      profile.Name,
				"headline":  profile.Headline,
				"bio":       profile.Bio,
				"photo_url": profile.PhotoURL,
				"location":  profile.Location,
				"theme":     profile.Theme,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Profile", profile.ID)
		}

		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.ProfileBlock{}).Error; err != nil {
			return err
		}
		if len(profile.Blocks) > 0 {
			blocks := make([]models.ProfileBlock, len(profile.Blocks))
			copy(blocks, profile.Blocks)
			for i := range blocks {
				blocks[i].ProfileID = profile.ID
				blocks[i].Position = i
			}
			if err := tx.Create(&blocks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			r.logger.LogError(ctx, err, "save")
			return appErr
		}
		r.logger.LogError(ctx, err, "save")
		return models.NewInternalError(err)
	}

	r.logger.LogWrite(ctx, "save", map[string]interface{}{
		"profile_id": profile.ID,
		"blocks":     len(profile.Blocks),
	})

	r.invalidateHandle(ctx, profile.UserID)
	return nil
}

// invalidateHandle drops the cached public view for the profile owner.
func (r *profileRepository) invalidateHandle(ctx context.Context, userID string) {
	var handle string
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Pluck("handle", &handle).Error; err != nil || handle == "" {
		return
	}
	cache.InvalidateProfile(ctx, handle)
}
