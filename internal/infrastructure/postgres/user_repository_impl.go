package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contacts-api/internal/domain/entity"
	"contacts-api/internal/domain/repository"
)

const userColumns = `id, username, email, password_hash,
	COALESCE(avatar_url, ''), confirmed, COALESCE(refresh_token, ''),
	created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&u.AvatarURL, &u.Confirmed, &u.RefreshToken,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id, confirmed, created_at, updated_at
	`, u.Username, u.Email, u.Password, u.AvatarURL)

	return row.Scan(&u.ID, &u.Confirmed, &u.CreatedAt, &u.UpdatedAt)
}

// UpdateRefreshToken overwrites the stored refresh token; an empty
// token revokes the current session.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID int64, token string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET refresh_token = NULLIF($1, ''), updated_at = now()
		WHERE id = $2
	`, token, userID)
	return err
}

func (r *UserRepository) UpdateAvatarURL(ctx context.Context, email, url string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET avatar_url = NULLIF($1, ''), updated_at = now()
		WHERE email = $2
		RETURNING `+userColumns+`
	`, url, email)
	return scanUser(row)
}

func (r *UserRepository) ConfirmEmail(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET confirmed = TRUE, updated_at = now()
		WHERE email = $1
	`, email)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
