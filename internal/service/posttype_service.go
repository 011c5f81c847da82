//go:generate mockery --name PostTypeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/auth"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/repository"
)

// PostTypeService classifies a user as "shelter" or "volunteer".
type PostTypeService interface {
	// Resolve returns the post type, or "" when the user cannot be
	// classified. The caller decides the default; this resolver never
	// guesses. Resolution order, first match wins:
	//   1. explicit post type in the account metadata (authoritative once
	//      set, spares the content join on every login)
	//   2. the user's profile → legacy user ID → published authored content
	//   3. legacy credential looked up by e-mail → published authored content
	Resolve(ctx context.Context, accountID *uuid.UUID, email string) string
}

type postTypeService struct {
	db          *gorm.DB
	provider    auth.Provider
	profileRepo repository.ProfileRepository
	legacyRepo  repository.LegacyUserRepository
	contentRepo repository.ContentRepository
}

func NewPostTypeService(
	db *gorm.DB,
	provider auth.Provider,
	profileRepo repository.ProfileRepository,
	legacyRepo repository.LegacyUserRepository,
	contentRepo repository.ContentRepository,
) PostTypeService {
	return &postTypeService{
		db:          db,
		provider:    provider,
		profileRepo: profileRepo,
		legacyRepo:  legacyRepo,
		contentRepo: contentRepo,
	}
}

func (s *postTypeService) Resolve(ctx context.Context, accountID *uuid.UUID, email string) string {
	logger := middleware.GetLogger(ctx)

	if accountID != nil {
		account, err := s.provider.GetUserByID(ctx, *accountID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Warn("Post type resolution: account lookup failed", "error", err)
			}
		} else if account.PostType != nil && *account.PostType != "" {
			return *account.PostType
		}

		profile, err := s.profileRepo.FindByID(ctx, s.db, *accountID)
		if err == nil && profile.LegacyUserID != nil {
			if postType := s.fromAuthoredContent(ctx, *profile.LegacyUserID); postType != "" {
				return postType
			}
			// The legacy ID was known but yielded nothing; the e-mail
			// fallback would find the same credential again.
			return ""
		}
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Post type resolution: profile lookup failed", "error", err)
		}
	}

	if email == "" {
		return ""
	}

	cred, err := s.legacyRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Post type resolution: legacy lookup failed", "error", err)
		}
		return ""
	}
	return s.fromAuthoredContent(ctx, cred.ID)
}

func (s *postTypeService) fromAuthoredContent(ctx context.Context, legacyUserID int64) string {
	logger := middleware.GetLogger(ctx)

	postType, err := s.contentRepo.FindPublishedTypeByAuthor(ctx, s.db, legacyUserID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Post type resolution: content lookup failed", "error", err, "legacy_user_id", legacyUserID)
		}
		return ""
	}
	return postType
}
