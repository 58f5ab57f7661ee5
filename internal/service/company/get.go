package company

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Get returns a company by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// List returns one page of companies matching the filter.
func (s *Service) List(ctx context.Context, filter domain.CompanyFilter, page domain.PageRequest) (domain.Page[domain.Company], error) {
	if err := page.Validate(); err != nil {
		return domain.Page[domain.Company]{}, err
	}
	return s.companies.Find(ctx, filter, page)
}
