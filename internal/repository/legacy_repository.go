//go:generate mockery --name LegacyUserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
)

type LegacyUserRepository interface {
	// FindByEmail matches case-insensitively. Returns model.ErrNotFound when
	// no row exists; any other error is a storage failure, which callers must
	// treat differently from "not found".
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.LegacyCredential, error)
	// MarkMigrated is idempotent: marking an already-migrated row succeeds
	// and preserves the original migrated_at timestamp.
	MarkMigrated(ctx context.Context, db *gorm.DB, id int64) error
	// UpdatePasswordHash replaces the stored legacy hash, used for lazy
	// rehashing after a successful verification.
	UpdatePasswordHash(ctx context.Context, db *gorm.DB, id int64, newHash string) error
}

type gormLegacyUserRepository struct{}

func NewGormLegacyUserRepository() LegacyUserRepository {
	return &gormLegacyUserRepository{}
}

func (r *gormLegacyUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.LegacyCredential, error) {
	logger := middleware.GetLogger(ctx)
	var cred model.LegacyCredential

	result := db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&cred)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Legacy credential not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding legacy credential by email in DB",
			"error", result.Error,
			"email", email,
		)
		return nil, fmt.Errorf("gormLegacyUserRepository.FindByEmail: %w", result.Error)
	}
	return &cred, nil
}

func (r *gormLegacyUserRepository) MarkMigrated(ctx context.Context, db *gorm.DB, id int64) error {
	logger := middleware.GetLogger(ctx)

	// COALESCE keeps the timestamp of the first migration on re-invocation.
	result := db.WithContext(ctx).
		Model(&model.LegacyCredential{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"migrated":    true,
			"migrated_at": gorm.Expr("COALESCE(migrated_at, ?)", time.Now()),
		})
	if result.Error != nil {
		logger.Error(
			"Error marking legacy credential as migrated in DB",
			"error", result.Error,
			"legacy_user_id", id,
		)
		return fmt.Errorf("gormLegacyUserRepository.MarkMigrated: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Legacy credential not found for migration flag", "legacy_user_id", id)
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLegacyUserRepository) UpdatePasswordHash(ctx context.Context, db *gorm.DB, id int64, newHash string) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Model(&model.LegacyCredential{}).
		Where("id = ?", id).
		Update("password_hash", newHash)
	if result.Error != nil {
		logger.Error(
			"Error updating legacy password hash in DB",
			"error", result.Error,
			"legacy_user_id", id,
		)
		return fmt.Errorf("gormLegacyUserRepository.UpdatePasswordHash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
