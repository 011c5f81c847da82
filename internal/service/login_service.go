//go:generate mockery --name LoginService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/auth"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/config"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/metrics"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/repository"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/wppass"
)

// LoginResult is the terminal state of a successful login. Migrated is false
// when this very call performed the migration, true on the native path.
type LoginResult struct {
	Session  *model.Session
	Migrated bool
	PostType string
}

// LoginService authenticates a user against the native account store and,
// failing that, against the legacy credential table, migrating the account
// on the first successful legacy login.
type LoginService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error)
}

type loginService struct {
	db          *gorm.DB
	provider    auth.Provider
	legacyRepo  repository.LegacyUserRepository
	profileRepo repository.ProfileRepository
	postTypes   PostTypeService
	mailer      Mailer
	cfg         *config.Config
}

func NewLoginService(
	db *gorm.DB,
	provider auth.Provider,
	legacyRepo repository.LegacyUserRepository,
	profileRepo repository.ProfileRepository,
	postTypes PostTypeService,
	mailer Mailer,
	cfg *config.Config,
) LoginService {
	return &loginService{
		db:          db,
		provider:    provider,
		legacyRepo:  legacyRepo,
		profileRepo: profileRepo,
		postTypes:   postTypes,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *loginService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	logger := middleware.GetLogger(ctx)
	timer := prometheus.NewTimer(metrics.LoginDuration)
	defer timer.ObserveDuration()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	logger = logger.With("email", email)

	// Native path first. Any failure, wrong password or unknown account
	// alike, falls through to the legacy store.
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err == nil {
		logger.Info("Login successful via native path", "account_id", session.UserID.String())
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeNative).Inc()
		return &LoginResult{
			Session:  session,
			Migrated: true,
			PostType: s.postTypes.Resolve(ctx, &session.UserID, email),
		}, nil
	}

	cred, err := s.legacyRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		// Lookup errors and "no such user" both end in the same generic
		// rejection; only the log distinguishes them.
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: no native account and no legacy credential")
		} else {
			logger.Error("Login failed: legacy credential lookup error", "error", err)
		}
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, model.NewInvalidCredentialsError()
	}

	if cred.Migrated {
		// One-way gate: a migrated credential means the native account
		// exists, so the native attempt above failing means the password is
		// simply wrong. Never re-enter provisioning.
		logger.Warn("Login failed: legacy credential already migrated", "legacy_user_id", cred.ID)
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, model.NewInvalidCredentialsError()
	}

	if !wppass.CheckPassword(password, cred.PasswordHash) {
		logger.Warn("Login failed: legacy password mismatch", "legacy_user_id", cred.ID)
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, model.NewInvalidCredentialsError()
	}

	result, err := s.provision(ctx, logger, email, password, cred)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeProvisioningFailed).Inc()
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeMigrated).Inc()
	return result, nil
}

// provision creates the native account for a verified legacy credential and
// signs the user in. Only account creation and the final sign-in can fail the
// login; profile insert, migration flag, rehash and the notice mail are
// bookkeeping and never block a user who just proved their password.
func (s *loginService) provision(ctx context.Context, logger *slog.Logger, email, password string, cred *model.LegacyCredential) (*LoginResult, error) {
	account, err := s.provider.CreateUser(ctx, auth.NewUser{
		Email:          email,
		Password:       password,
		EmailConfirmed: true,
	})
	if err != nil {
		// A concurrent migration of the same e-mail loses here on the unique
		// constraint. No retry; the user's next attempt lands on the native
		// path.
		logger.Error("Migration failed: account creation error", "error", err, "legacy_user_id", cred.ID)
		// Always a 500 to the caller, whatever the cause; the client cannot
		// act on a conflict it does not know exists.
		return nil, model.NewAppError("ERRO_MIGRACAO", "Erro ao migrar conta", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
	}

	profile := &model.Profile{
		ID:           account.ID,
		Email:        email,
		LegacyUserID: &cred.ID,
	}
	if cred.DisplayName != "" {
		displayName := cred.DisplayName
		profile.FullName = &displayName
	}
	if err := s.profileRepo.Insert(ctx, s.db, profile); err != nil {
		s.bookkeepingFailure(logger, "profile_insert", err, cred.ID)
	}

	if err := s.legacyRepo.MarkMigrated(ctx, s.db, cred.ID); err != nil {
		s.bookkeepingFailure(logger, "mark_migrated", err, cred.ID)
	}

	if s.cfg.Auth.LazyRehash {
		if newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err != nil {
			s.bookkeepingFailure(logger, "rehash", err, cred.ID)
		} else if err := s.legacyRepo.UpdatePasswordHash(ctx, s.db, cred.ID, string(newHash)); err != nil {
			s.bookkeepingFailure(logger, "rehash", err, cred.ID)
		}
	}

	if err := s.sendMigrationNotice(ctx, email); err != nil {
		s.bookkeepingFailure(logger, "notice_mail", err, cred.ID)
	}

	// Account creation does not yield a session; sign in again for real
	// tokens instead of fabricating them.
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		logger.Error("Migration failed: re-authentication after provisioning", "error", err, "legacy_user_id", cred.ID)
		return nil, model.NewAppError("ERRO_POS_MIGRACAO", "Erro ao autenticar após migração", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
	}

	logger.Info("Account migrated and logged in",
		"account_id", account.ID.String(),
		"legacy_user_id", cred.ID,
	)

	return &LoginResult{
		Session:  session,
		Migrated: false,
		PostType: s.postTypes.Resolve(ctx, &account.ID, email),
	}, nil
}

// bookkeepingFailure records a non-fatal migration step failure. Login
// availability outranks bookkeeping consistency, so the flow continues;
// strict mode only raises the log level.
func (s *loginService) bookkeepingFailure(logger *slog.Logger, step string, err error, legacyUserID int64) {
	metrics.BookkeepingFailures.WithLabelValues(step).Inc()
	if s.cfg.Auth.StrictBookkeeping {
		logger.Error("Migration bookkeeping failure", "step", step, "error", err, "legacy_user_id", legacyUserID)
	} else {
		logger.Warn("Migration bookkeeping failure", "step", step, "error", err, "legacy_user_id", legacyUserID)
	}
}

func (s *loginService) sendMigrationNotice(ctx context.Context, email string) error {
	subject := "Sua conta foi atualizada - Medicina de Abrigos Brasil"
	body := fmt.Sprintf(
		"Olá!\n\nSua conta no Medicina de Abrigos Brasil foi migrada para a nova plataforma.\n"+
			"Você já pode acessar normalmente em %s com o mesmo e-mail e senha.\n\n"+
			"Se você não tentou entrar agora, entre em contato com a nossa equipe.",
		s.cfg.App.FrontendURL,
	)
	return s.mailer.Send(ctx, email, subject, body)
}
