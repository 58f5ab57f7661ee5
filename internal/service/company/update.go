package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Update applies a partial update to an ACTIVE company. Fields left nil are
// not touched. A DEACTIVATED company rejects every field update.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Company, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	now := s.now()
	params, changes := updateParams(input)

	var company *domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetByIDForUpdate(txCtx, input.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if !current.IsActive() {
			return domain.NewStateError("company "+current.ID.String(), current.Status, "update")
		}
		if len(changes) == 0 {
			company = current
			return nil
		}

		company, err = s.companies.Update(txCtx, input.CompanyID, params, actor, now)
		if err != nil {
			return fmt.Errorf("update company: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeCompany,
			EntityID:   company.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("company_id", company.ID.String()),
		slog.Int("fields", len(changes)),
	)

	return company, nil
}

func updateParams(input UpdateInput) (domain.CompanyUpdateParams, map[string]any) {
	var params domain.CompanyUpdateParams
	changes := make(map[string]any)

	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		params.Name = &name
		changes["name"] = name
	}
	if input.CountryCode != nil {
		code := domain.NormalizeCountryCode(*input.CountryCode)
		params.CountryCode = &code
		changes["country_code"] = code
	}
	if input.Addresses != nil {
		params.Addresses = input.Addresses
		changes["addresses"] = *input.Addresses
	}
	if input.Phones != nil {
		params.Phones = input.Phones
		changes["phones"] = *input.Phones
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		params.Email = &email
		changes["email"] = email
	}
	if input.Website != nil {
		website := strings.TrimSpace(*input.Website)
		params.Website = &website
		changes["website"] = website
	}
	return params, changes
}
