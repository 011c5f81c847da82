//go:generate mockery --name AccountRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
)

type AccountRepository interface {
	// Create fails with model.ErrConflict on a duplicate e-mail. That unique
	// constraint is the serialization point for two logins racing through
	// migration for the same legacy user: one wins, the other surfaces a
	// provisioning failure.
	Create(ctx context.Context, db *gorm.DB, account *model.Account) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Account, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Account, error)
	CreateRefreshSession(ctx context.Context, db *gorm.DB, session *model.RefreshSession) error
	DeleteExpiredSessions(ctx context.Context, db *gorm.DB) error
}

type gormAccountRepository struct{}

func NewGormAccountRepository() AccountRepository {
	return &gormAccountRepository{}
}

func (r *gormAccountRepository) Create(ctx context.Context, db *gorm.DB, account *model.Account) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(account)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) ||
			(errors.As(result.Error, &pgErr) && pgErr.Code == "23505") {
			logger.Warn(
				"Duplicate key error on account create",
				"error", result.Error,
				"email", account.Email,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating account in DB",
			"error", result.Error,
			"email", account.Email,
		)
		return fmt.Errorf("gormAccountRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAccountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Account, error) {
	logger := middleware.GetLogger(ctx)
	var account model.Account

	result := db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Account not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding account by email in DB",
			"error", result.Error,
			"email", email,
		)
		return nil, fmt.Errorf("gormAccountRepository.FindByEmail: %w", result.Error)
	}
	return &account, nil
}

func (r *gormAccountRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Account, error) {
	logger := middleware.GetLogger(ctx)
	var account model.Account

	result := db.WithContext(ctx).Where("id = ?", id).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding account by ID in DB",
			"error", result.Error,
			"account_id", id.String(),
		)
		return nil, fmt.Errorf("gormAccountRepository.FindByID: %w", result.Error)
	}
	return &account, nil
}

func (r *gormAccountRepository) CreateRefreshSession(ctx context.Context, db *gorm.DB, session *model.RefreshSession) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(session).Error; err != nil {
		logger.Error("Failed to create refresh session", "error", err)
		return fmt.Errorf("gormAccountRepository.CreateRefreshSession: %w", err)
	}
	return nil
}

func (r *gormAccountRepository) DeleteExpiredSessions(ctx context.Context, db *gorm.DB) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.RefreshSession{})
	if result.Error != nil {
		logger.Error("Failed to delete expired refresh sessions", "error", result.Error)
		return fmt.Errorf("gormAccountRepository.DeleteExpiredSessions: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Debug("Deleted expired refresh sessions", "count", result.RowsAffected)
	}
	return nil
}
