package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a row in the native auth store. Migrated users get one of these
// created lazily on their first successful legacy login.
type Account struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string     `gorm:"not null" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	// PostType is optional account metadata. Once set it is authoritative
	// for role resolution and spares the authored-content lookup.
	PostType  *string   `gorm:"type:varchar(50)" json:"post_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// RefreshSession is an opaque refresh token row. The access token is a JWT
// and lives only client-side; refresh tokens are stored so they can be
// revoked and expired server-side.
type RefreshSession struct {
	Token     string    `gorm:"primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (RefreshSession) TableName() string {
	return "refresh_sessions"
}

// Session is the ephemeral result of a successful sign-in. Its lifecycle is
// owned by the auth provider; the login flow only passes it through.
type Session struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}
