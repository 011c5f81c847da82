package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
)

// NewDB opens the Postgres connection used by the service, with GORM logging
// routed through slog.
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         slogGormLogger.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")

	return db, nil
}

// Migrate runs schema migration for all models plus the case-insensitive
// unique e-mail indexes. The lower(email) indexes enforce the one-email-one-
// account invariant regardless of the casing the legacy dump carried.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Account{},
		&model.RefreshSession{},
		&model.Profile{},
		&model.LegacyCredential{},
		&model.AuthoredContent{},
	); err != nil {
		return err
	}

	// Expression indexes are Postgres-specific; skip them for the sqlite
	// databases used in tests.
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email_lower " +
			"ON accounts ((lower(email)))",
	).Error; err != nil {
		return err
	}

	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_legacy_credentials_email_lower " +
			"ON legacy_credentials ((lower(email)))",
	).Error
}
