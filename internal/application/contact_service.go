package application

import (
	"context"

	"contacts-api/internal/domain/entity"
	"contacts-api/internal/domain/repository"
)

// ContactService scopes every contact operation by the owner's id.
// It adds no business rules beyond the store's own; cross-user access
// is impossible through these entry points.
type ContactService struct {
	Contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{Contacts: contacts}
}

func (s *ContactService) List(ctx context.Context, ownerID int64, f repository.ContactFilter) ([]*entity.Contact, error) {
	return s.Contacts.List(ctx, ownerID, f)
}

func (s *ContactService) Get(ctx context.Context, id, ownerID int64) (*entity.Contact, error) {
	return s.Contacts.GetByID(ctx, id, ownerID)
}

func (s *ContactService) Create(ctx context.Context, ownerID int64, c *entity.Contact) (*entity.Contact, error) {
	c.UserID = ownerID
	if err := s.Contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, id, ownerID int64, c *entity.Contact) (*entity.Contact, error) {
	return s.Contacts.Update(ctx, id, ownerID, c)
}

func (s *ContactService) Delete(ctx context.Context, id, ownerID int64) (*entity.Contact, error) {
	return s.Contacts.Delete(ctx, id, ownerID)
}
