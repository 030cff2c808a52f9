package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contacts-api/internal/domain/entity"
	"contacts-api/internal/domain/repository"
)

const contactColumns = `id, user_id, name, last_name, email, phone_number,
	birth_date, COALESCE(notes, ''), created_at, updated_at`

// hasBirthdaySoon matches contacts whose birthday anniversary falls within
// the next N days: the age in full years of the birth date shifted back by
// N days exceeds the age of the birth date as-is exactly when the
// anniversary lies in (today, today+N], year wraparound included.
const hasBirthdaySoon = `date_part('year', age(birth_date - make_interval(days => $%d))) > date_part('year', age(birth_date))`

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	c := &entity.Contact{}
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.LastName, &c.Email,
		&c.PhoneNumber, &c.BirthDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *ContactRepository) List(ctx context.Context, ownerID int64, f repository.ContactFilter) ([]*entity.Contact, error) {
	where := []string{"user_id = $1"}
	args := []any{ownerID}

	addEq := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		where = append(where, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	addEq("name", f.Name)
	addEq("last_name", f.LastName)
	addEq("email", f.Email)

	if f.UpcomingBirthday {
		args = append(args, repository.BirthdayWindowDays)
		where = append(where, fmt.Sprintf(hasBirthdaySoon, len(args)))
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, contactColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*entity.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) GetByID(ctx context.Context, id, ownerID int64) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	return scanContact(row)
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (user_id, name, last_name, email, phone_number, birth_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.LastName, c.Email, c.PhoneNumber, c.BirthDate, c.Notes)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update replaces all mutable fields of the contact identified by id and
// owner. A miss yields (nil, nil); the caller maps that to not-found.
func (r *ContactRepository) Update(ctx context.Context, id, ownerID int64, in *entity.Contact) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE contacts
		SET name = $1, last_name = $2, email = $3, phone_number = $4,
			birth_date = $5, notes = NULLIF($6, ''), updated_at = now()
		WHERE id = $7 AND user_id = $8
		RETURNING `+contactColumns+`
	`, in.Name, in.LastName, in.Email, in.PhoneNumber, in.BirthDate, in.Notes, id, ownerID)
	return scanContact(row)
}

// Delete removes the contact and returns the deleted snapshot, or
// (nil, nil) when no row matched.
func (r *ContactRepository) Delete(ctx context.Context, id, ownerID int64) (*entity.Contact, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM contacts
		WHERE id = $1 AND user_id = $2
		RETURNING `+contactColumns+`
	`, id, ownerID)
	return scanContact(row)
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
