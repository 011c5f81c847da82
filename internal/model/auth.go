package model

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login. Migrated is true when the
// user came in through the native path and false when this very request was
// the migration event, so the frontend can special-case the first login.
type LoginResponse struct {
	OK           bool    `json:"ok"`
	Migrated     bool    `json:"migrated"`
	PostType     *string `json:"post_type"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

type ContextKey string

// AccountIDKey is the request-context key holding the authenticated account ID.
const AccountIDKey ContextKey = "accountID"
