package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the plain text.
// RefreshToken mirrors the single currently valid refresh token;
// an empty value means no active session (revoked).
type User struct {
	ID           int64
	Username     string
	Email        string
	Password     string
	AvatarURL    string
	Confirmed    bool
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
