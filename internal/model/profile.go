package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public-facing identity of a user. Its ID equals the
// native account ID. A profile is created exactly once, at the moment of the
// first successful legacy login; subsequent logins never touch it.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null" json:"email"`
	FullName     *string   `json:"full_name"`
	LegacyUserID *int64    `gorm:"uniqueIndex" json:"legacy_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileResponse is what /api/me returns.
type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName *string   `json:"full_name"`
	PostType *string   `json:"post_type"`
}
