package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authmocks "github.com/AriSilva94/mvabrigosbrasil-sub001/internal/auth/mocks"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/repository/mocks"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/service"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestPostTypeService_Resolve(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name       string
		accountID  *uuid.UUID
		email      string
		setupMocks func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository)
		want       string
	}{
		{
			name:      "account metadata wins without any content lookup",
			accountID: &accountID,
			email:     "a@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				p.On("GetUserByID", mock.Anything, accountID).
					Return(&model.Account{ID: accountID, PostType: strPtr(model.PostTypeVolunteer)}, nil).Once()
			},
			want: model.PostTypeVolunteer,
		},
		{
			name:      "profile legacy id leads to published shelter content",
			accountID: &accountID,
			email:     "a@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				p.On("GetUserByID", mock.Anything, accountID).
					Return(&model.Account{ID: accountID}, nil).Once()
				pr.On("FindByID", mock.Anything, mock.Anything, accountID).
					Return(&model.Profile{ID: accountID, LegacyUserID: int64Ptr(42)}, nil).Once()
				cr.On("FindPublishedTypeByAuthor", mock.Anything, mock.Anything, int64(42)).
					Return(model.PostTypeShelter, nil).Once()
			},
			want: model.PostTypeShelter,
		},
		{
			name:      "no authored content resolves to nothing",
			accountID: &accountID,
			email:     "a@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				p.On("GetUserByID", mock.Anything, accountID).
					Return(&model.Account{ID: accountID}, nil).Once()
				pr.On("FindByID", mock.Anything, mock.Anything, accountID).
					Return(&model.Profile{ID: accountID, LegacyUserID: int64Ptr(42)}, nil).Once()
				cr.On("FindPublishedTypeByAuthor", mock.Anything, mock.Anything, int64(42)).
					Return("", model.ErrNotFound).Once()
			},
			want: "",
		},
		{
			name:  "no account: falls back to legacy credential by email",
			email: "a@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				lr.On("FindByEmail", mock.Anything, mock.Anything, "a@x.com").
					Return(&model.LegacyCredential{ID: 42, Email: "a@x.com"}, nil).Once()
				cr.On("FindPublishedTypeByAuthor", mock.Anything, mock.Anything, int64(42)).
					Return(model.PostTypeVolunteer, nil).Once()
			},
			want: model.PostTypeVolunteer,
		},
		{
			name:  "no legacy credential either",
			email: "ghost@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				lr.On("FindByEmail", mock.Anything, mock.Anything, "ghost@x.com").
					Return(nil, model.ErrNotFound).Once()
			},
			want: "",
		},
		{
			name:  "lookup errors never classify",
			email: "a@x.com",
			setupMocks: func(p *authmocks.Provider, pr *mocks.ProfileRepository, lr *mocks.LegacyUserRepository, cr *mocks.ContentRepository) {
				lr.On("FindByEmail", mock.Anything, mock.Anything, "a@x.com").
					Return(nil, errors.New("connection refused")).Once()
			},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockProvider := new(authmocks.Provider)
			mockProfileRepo := new(mocks.ProfileRepository)
			mockLegacyRepo := new(mocks.LegacyUserRepository)
			mockContentRepo := new(mocks.ContentRepository)
			tc.setupMocks(mockProvider, mockProfileRepo, mockLegacyRepo, mockContentRepo)

			svc := service.NewPostTypeService(nil, mockProvider, mockProfileRepo, mockLegacyRepo, mockContentRepo)
			got := svc.Resolve(context.Background(), tc.accountID, tc.email)

			assert.Equal(t, tc.want, got)
			mockProvider.AssertExpectations(t)
			mockProfileRepo.AssertExpectations(t)
			mockLegacyRepo.AssertExpectations(t)
			mockContentRepo.AssertExpectations(t)
		})
	}
}
