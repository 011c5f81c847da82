//go:generate mockery --name ProfileService --output ./mocks --outpkg mocks --case=underscore
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

// ProfileService serves the authenticated user's own profile.
type ProfileService interface {
	GetMe(ctx context.Context, accountID uuid.UUID) (*model.ProfileResponse, error)
}

type profileService struct {
	db          *gorm.DB
	provider    auth.Provider
	profileRepo repository.ProfileRepository
	postTypes   PostTypeService
}

func NewProfileService(db *gorm.DB, provider auth.Provider, profileRepo repository.ProfileRepository, postTypes PostTypeService) ProfileService {
	return &profileService{
		db:          db,
		provider:    provider,
		profileRepo: profileRepo,
		postTypes:   postTypes,
	}
}

func (s *profileService) GetMe(ctx context.Context, accountID uuid.UUID) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)

	account, err := s.provider.GetUserByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Account not found for authenticated ID", "account_id", accountID.String())
			return nil, model.NewAppError("CONTA_NAO_ENCONTRADA", "Conta não encontrada.", "", model.ErrNotFound)
		}
		logger.Error("Error loading account", "error", err, "account_id", accountID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
	}

	response := &model.ProfileResponse{
		ID:    account.ID,
		Email: account.Email,
	}

	profile, err := s.profileRepo.FindByID(ctx, s.db, accountID)
	if err == nil {
		response.FullName = profile.FullName
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Warn("Error loading profile", "error", err, "account_id", accountID.String())
	}

	if postType := s.postTypes.Resolve(ctx, &accountID, account.Email); postType != "" {
		response.PostType = &postType
	}

	return response, nil
}
