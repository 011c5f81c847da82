//go:generate mockery --name Provider --output ./mocks --outpkg mocks --case=underscore
// Package auth implements the native credential store: bcrypt-hashed
// passwords in the accounts table, JWT access tokens and opaque refresh
// sessions.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/config"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/repository"
)

// NewUser describes an account to be created by CreateUser.
type NewUser struct {
	Email          string
	Password       string
	EmailConfirmed bool
	PostType       *string
}

type Provider interface {
	// SignInWithPassword authenticates an account and issues a fresh session.
	// Unknown e-mail and wrong password both return model.ErrUnauthorized.
	SignInWithPassword(ctx context.Context, email, password string) (*model.Session, error)
	// CreateUser creates an account; duplicate e-mail returns
	// model.ErrConflict. It does not issue a session.
	CreateUser(ctx context.Context, u NewUser) (*model.Account, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type gormProvider struct {
	db       *gorm.DB
	accounts repository.AccountRepository
	cfg      *config.Config
}

func NewGormProvider(db *gorm.DB, accounts repository.AccountRepository, cfg *config.Config) Provider {
	return &gormProvider{db: db, accounts: accounts, cfg: cfg}
}

func (p *gormProvider) SignInWithPassword(ctx context.Context, email, password string) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	account, err := p.accounts.FindByEmail(ctx, p.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth: sign-in lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Debug("Sign-in failed: password mismatch", "account_id", account.ID.String())
		return nil, model.ErrUnauthorized
	}

	accessToken, err := p.signAccessToken(account.ID)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err, "account_id", account.ID.String())
		return nil, fmt.Errorf("auth: sign access token: %w", err)
	}

	refreshToken, err := p.issueRefreshSession(ctx, account.ID)
	if err != nil {
		logger.Error("Failed to issue refresh session", "error", err, "account_id", account.ID.String())
		return nil, fmt.Errorf("auth: issue refresh session: %w", err)
	}

	return &model.Session{
		UserID:       account.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (p *gormProvider) CreateUser(ctx context.Context, u NewUser) (*model.Account, error) {
	logger := middleware.GetLogger(ctx)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	account := &model.Account{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: string(hashedPassword),
		PostType:     u.PostType,
	}
	if u.EmailConfirmed {
		now := time.Now()
		account.EmailConfirmedAt = &now
	}

	if err := p.accounts.Create(ctx, p.db, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (p *gormProvider) GetUserByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	return p.accounts.FindByID(ctx, p.db, id)
}

func (p *gormProvider) signAccessToken(accountID uuid.UUID) (string, error) {
	claims := &jwt.RegisteredClaims{
		Issuer:    p.cfg.App.Name,
		Subject:   accountID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.cfg.JWT.SecretKey))
}

func (p *gormProvider) issueRefreshSession(ctx context.Context, accountID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := hex.EncodeToString(tokenBytes)

	session := &model.RefreshSession{
		Token:     tokenString,
		AccountID: accountID,
		ExpiresAt: time.Now().Add(p.cfg.JWT.RefreshTokenTTL),
	}
	if err := p.accounts.CreateRefreshSession(ctx, p.db, session); err != nil {
		return "", err
	}
	return tokenString, nil
}
