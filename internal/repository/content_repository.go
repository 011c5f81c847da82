//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
)

type ContentRepository interface {
	// FindPublishedTypeByAuthor returns the content type ("shelter" or
	// "volunteer") of the first published record authored by the given legacy
	// user, or model.ErrNotFound when none qualifies. Drafts and unrelated
	// content types never match, so a user whose only authored content is,
	// say, a library article is not classified at all.
	FindPublishedTypeByAuthor(ctx context.Context, db *gorm.DB, legacyUserID int64) (string, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) FindPublishedTypeByAuthor(ctx context.Context, db *gorm.DB, legacyUserID int64) (string, error) {
	logger := middleware.GetLogger(ctx)
	var content model.AuthoredContent

	result := db.WithContext(ctx).
		Where("author_legacy_user_id = ? AND status = ? AND content_type IN ?",
			legacyUserID,
			model.ContentStatusPublished,
			[]string{model.PostTypeShelter, model.PostTypeVolunteer},
		).
		Order("id").
		First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger.Error(
			"Error finding authored content by author in DB",
			"error", result.Error,
			"legacy_user_id", legacyUserID,
		)
		return "", fmt.Errorf("gormContentRepository.FindPublishedTypeByAuthor: %w", result.Error)
	}
	return content.ContentType, nil
}
