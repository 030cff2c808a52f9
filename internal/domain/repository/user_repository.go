package repository

import (
	"context"

	"contacts-api/internal/domain/entity"
)

// UserRepository defines persistence operations over the users table.
// Lookups return (nil, nil) on a miss; "not found" is never an error here,
// the orchestration layer decides what a missing user means.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	UpdateRefreshToken(ctx context.Context, userID int64, token string) error
	UpdateAvatarURL(ctx context.Context, email, url string) (*entity.User, error)
	ConfirmEmail(ctx context.Context, email string) error
}
