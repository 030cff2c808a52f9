package repository

import (
	"context"

	"contacts-api/internal/domain/entity"
)

// ContactFilter narrows a contact listing. String fields are exact-match
// filters applied only when non-empty; UpcomingBirthday selects contacts
// whose birthday anniversary falls within the next BirthdayWindowDays.
type ContactFilter struct {
	Limit            int
	Offset           int
	Name             string
	LastName         string
	Email            string
	UpcomingBirthday bool
}

// BirthdayWindowDays is the fixed look-ahead for the upcoming-birthday filter.
const BirthdayWindowDays = 7

// ContactRepository defines persistence operations over the contacts table.
// Every operation is scoped by the owning user's id. Misses return
// (nil, nil), never an error.
type ContactRepository interface {
	List(ctx context.Context, ownerID int64, f ContactFilter) ([]*entity.Contact, error)
	GetByID(ctx context.Context, id, ownerID int64) (*entity.Contact, error)
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, id, ownerID int64, in *entity.Contact) (*entity.Contact, error)
	Delete(ctx context.Context, id, ownerID int64) (*entity.Contact, error)
}
