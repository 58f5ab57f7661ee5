package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns one page of users matching the filter.
func (s *Service) List(ctx context.Context, filter domain.UserFilter, page domain.PageRequest) (domain.Page[domain.User], error) {
	if err := page.Validate(); err != nil {
		return domain.Page[domain.User]{}, err
	}
	return s.users.Find(ctx, filter, page)
}
