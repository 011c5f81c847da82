package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/repository"
)

// newTestDB opens a private in-memory database per test. A single connection
// keeps the in-memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))
	return db
}

func TestLegacyUserRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormLegacyUserRepository()
	ctx := context.Background()

	require.NoError(t, db.Create(&model.LegacyCredential{
		ID:           42,
		Email:        "Abrigo@Exemplo.com.br",
		PasswordHash: "10a9c136d796bab18d3e144092a4f20a",
		DisplayName:  "Abrigo Exemplo",
	}).Error)

	// Case-insensitive exact match.
	for _, email := range []string{"abrigo@exemplo.com.br", "ABRIGO@EXEMPLO.COM.BR", "Abrigo@Exemplo.com.br"} {
		cred, err := repo.FindByEmail(ctx, db, email)
		require.NoError(t, err, "email %q", email)
		assert.Equal(t, int64(42), cred.ID)
	}

	_, err := repo.FindByEmail(ctx, db, "outro@exemplo.com.br")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLegacyUserRepository_MarkMigrated(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormLegacyUserRepository()
	ctx := context.Background()

	require.NoError(t, db.Create(&model.LegacyCredential{
		ID:           42,
		Email:        "abrigo@exemplo.com.br",
		PasswordHash: "x",
	}).Error)

	require.NoError(t, repo.MarkMigrated(ctx, db, 42))

	var cred model.LegacyCredential
	require.NoError(t, db.First(&cred, 42).Error)
	assert.True(t, cred.Migrated)
	require.NotNil(t, cred.MigratedAt)
	firstMigratedAt := *cred.MigratedAt

	// Second invocation is a no-op success and keeps the first timestamp.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.MarkMigrated(ctx, db, 42))

	require.NoError(t, db.First(&cred, 42).Error)
	assert.True(t, cred.Migrated)
	require.NotNil(t, cred.MigratedAt)
	assert.WithinDuration(t, firstMigratedAt, *cred.MigratedAt, time.Millisecond)

	assert.ErrorIs(t, repo.MarkMigrated(ctx, db, 999), model.ErrNotFound)
}

func TestLegacyUserRepository_UpdatePasswordHash(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormLegacyUserRepository()
	ctx := context.Background()

	require.NoError(t, db.Create(&model.LegacyCredential{
		ID:           42,
		Email:        "abrigo@exemplo.com.br",
		PasswordHash: "10a9c136d796bab18d3e144092a4f20a",
	}).Error)

	require.NoError(t, repo.UpdatePasswordHash(ctx, db, 42, "$2a$10$newhash"))

	var cred model.LegacyCredential
	require.NoError(t, db.First(&cred, 42).Error)
	assert.Equal(t, "$2a$10$newhash", cred.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, db, 999, "x"), model.ErrNotFound)
}

func TestProfileRepository_InsertAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormProfileRepository()
	ctx := context.Background()

	legacyID := int64(42)
	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        "abrigo@exemplo.com.br",
		LegacyUserID: &legacyID,
	}
	require.NoError(t, repo.Insert(ctx, db, profile))

	found, err := repo.FindByID(ctx, db, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.Email, found.Email)

	byLegacy, err := repo.FindByLegacyUserID(ctx, db, 42)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byLegacy.ID)

	// Same primary key again.
	dup := &model.Profile{ID: profile.ID, Email: "abrigo@exemplo.com.br"}
	assert.ErrorIs(t, repo.Insert(ctx, db, dup), model.ErrConflict)

	// Different ID, same legacy user.
	dupLegacy := &model.Profile{ID: uuid.New(), Email: "outro@exemplo.com.br", LegacyUserID: &legacyID}
	assert.ErrorIs(t, repo.Insert(ctx, db, dupLegacy), model.ErrConflict)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContentRepository_FindPublishedTypeByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormContentRepository()
	ctx := context.Background()

	require.NoError(t, db.Create([]*model.AuthoredContent{
		{ID: 1, AuthorLegacyUserID: 10, ContentType: model.PostTypeShelter, Status: model.ContentStatusPublished},
		{ID: 2, AuthorLegacyUserID: 11, ContentType: model.PostTypeVolunteer, Status: "draft"},
		{ID: 3, AuthorLegacyUserID: 12, ContentType: "library-article", Status: model.ContentStatusPublished},
		{ID: 4, AuthorLegacyUserID: 13, ContentType: model.PostTypeVolunteer, Status: model.ContentStatusPublished},
	}).Error)

	postType, err := repo.FindPublishedTypeByAuthor(ctx, db, 10)
	require.NoError(t, err)
	assert.Equal(t, model.PostTypeShelter, postType)

	postType, err = repo.FindPublishedTypeByAuthor(ctx, db, 13)
	require.NoError(t, err)
	assert.Equal(t, model.PostTypeVolunteer, postType)

	// Draft shelter/volunteer content does not classify.
	_, err = repo.FindPublishedTypeByAuthor(ctx, db, 11)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Published content of an unrelated type does not classify.
	_, err = repo.FindPublishedTypeByAuthor(ctx, db, 12)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.FindPublishedTypeByAuthor(ctx, db, 999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAccountRepository_CreateAndSessions(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewGormAccountRepository()
	ctx := context.Background()

	account := &model.Account{
		ID:           uuid.New(),
		Email:        "Voluntario@Exemplo.com.br",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(ctx, db, account))

	found, err := repo.FindByEmail(ctx, db, "voluntario@exemplo.com.br")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)

	dup := &model.Account{ID: account.ID, Email: "voluntario@exemplo.com.br", PasswordHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)

	require.NoError(t, repo.CreateRefreshSession(ctx, db, &model.RefreshSession{
		Token:     "expired-token",
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.CreateRefreshSession(ctx, db, &model.RefreshSession{
		Token:     "live-token",
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteExpiredSessions(ctx, db))

	var remaining []model.RefreshSession
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "live-token", remaining[0].Token)
}
