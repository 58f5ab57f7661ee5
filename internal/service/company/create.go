package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Create registers a new ACTIVE company.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Company, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	now := s.now()

	var email *string
	if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
		e := strings.ToLower(strings.TrimSpace(*input.Email))
		email = &e
	}

	var company *domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		company, createErr = s.companies.Create(txCtx, &domain.Company{
			Name:        domain.NormalizeName(input.Name),
			CountryCode: domain.NormalizeCountryCode(input.CountryCode),
			Addresses:   input.Addresses,
			Phones:      input.Phones,
			Email:       email,
			Website:     domain.TrimOrNil(input.Website),
			Status:      domain.CompanyStatusActive,
			CreatedBy:   actor,
			CreatedAt:   now,
			UpdatedBy:   actor,
			UpdatedAt:   now,
		})
		if createErr != nil {
			return fmt.Errorf("create company: %w", createErr)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeCompany,
			EntityID:   company.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"name":         company.Name,
				"country_code": company.CountryCode,
				"status":       string(company.Status),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("company_id", company.ID.String()),
		slog.String("actor", actor),
	)

	return company, nil
}
