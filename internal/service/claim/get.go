package claim

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Get returns a claim by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	return s.claims.GetByID(ctx, id)
}

// List returns one page of claims matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ClaimFilter, page domain.PageRequest) (domain.Page[domain.Claim], error) {
	if err := page.Validate(); err != nil {
		return domain.Page[domain.Claim]{}, err
	}
	return s.claims.Find(ctx, filter, page)
}
