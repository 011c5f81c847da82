package model

import "time"

// Post types inferred from the content a user authored in the legacy system.
const (
	PostTypeShelter   = "shelter"
	PostTypeVolunteer = "volunteer"
)

// ContentStatusPublished marks legacy content that counts for role inference.
const ContentStatusPublished = "published"

// LegacyCredential is a row imported from the old WordPress user table.
// Everything except the migration flag is immutable; Migrated flips to true
// exactly once, on the first successful legacy login, and acts as a one-way
// gate into the native account store.
type LegacyCredential struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	DisplayName  string     `json:"display_name"`
	Migrated     bool       `gorm:"not null;default:false" json:"migrated"`
	MigratedAt   *time.Time `json:"migrated_at"`
}

func (LegacyCredential) TableName() string {
	return "legacy_credentials"
}

// AuthoredContent is a read-only reference to content authored in the legacy
// system. It is consulted only to infer whether a user ran a shelter or
// volunteered; this service never writes to it.
type AuthoredContent struct {
	ID                 int64  `gorm:"primaryKey" json:"id"`
	AuthorLegacyUserID int64  `gorm:"not null;index" json:"author_legacy_user_id"`
	ContentType        string `gorm:"type:varchar(50);not null" json:"content_type"`
	Status             string `gorm:"type:varchar(50);not null" json:"status"`
}

func (AuthoredContent) TableName() string {
	return "authored_contents"
}
