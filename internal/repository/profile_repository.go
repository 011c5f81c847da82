//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
)

type ProfileRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Profile, error)
	FindByLegacyUserID(ctx context.Context, db *gorm.DB, legacyUserID int64) (*model.Profile, error)
	// Insert fails with model.ErrConflict when a profile with the same ID or
	// legacy user ID already exists. Correct orchestration never hits that,
	// but this writes identity data, so the guard stays.
	Insert(ctx context.Context, db *gorm.DB, profile *model.Profile) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("id = ?", id).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by ID in DB",
			"error", result.Error,
			"profile_id", id.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByID: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindByLegacyUserID(ctx context.Context, db *gorm.DB, legacyUserID int64) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("legacy_user_id = ?", legacyUserID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by legacy user ID in DB",
			"error", result.Error,
			"legacy_user_id", legacyUserID,
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByLegacyUserID: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Insert(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) ||
			(errors.As(result.Error, &pgErr) && pgErr.Code == "23505") {
			logger.Warn(
				"Duplicate key error on profile insert",
				"error", result.Error,
				"profile_id", profile.ID.String(),
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error inserting profile in DB",
			"error", result.Error,
			"profile_id", profile.ID.String(),
		)
		return fmt.Errorf("gormProfileRepository.Insert: %w", result.Error)
	}
	return nil
}
