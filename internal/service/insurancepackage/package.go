package insurancepackage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

// Create adds a package to a company with a status derived from its dates.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.InsurancePackage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()
	start, end := dateOrNil(input.StartDate), dateOrNil(input.EndDate)

	var pkg *domain.InsurancePackage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.companies.GetByID(txCtx, input.CompanyID); err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		var err error
		pkg, err = s.packages.Create(txCtx, &domain.InsurancePackage{
			ID:               uuid.New(),
			CompanyID:        input.CompanyID,
			Name:             domain.NormalizeName(input.Name),
			StartDate:        start,
			EndDate:          end,
			PayrollFrequency: input.PayrollFrequency,
			Status:           domain.DerivePackageStatus(now, start, end),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("create insurance package: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeInsurancePackage,
			EntityID:   pkg.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"name":   pkg.Name,
				"status": string(pkg.Status),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "insurance package created",
		slog.String("package_id", pkg.ID.String()),
		slog.String("status", string(pkg.Status)),
	)

	return pkg, nil
}

// Update applies a partial update and re-derives the status from the
// resulting dates.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.InsurancePackage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()

	var pkg *domain.InsurancePackage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.packages.GetByID(txCtx, input.PackageID)
		if err != nil {
			return fmt.Errorf("get insurance package: %w", err)
		}

		next := *current
		changes := make(map[string]any)
		if input.Name != nil {
			next.Name = domain.NormalizeName(*input.Name)
			changes["name"] = next.Name
		}
		if input.PayrollFrequency != nil {
			next.PayrollFrequency = *input.PayrollFrequency
			changes["payroll_frequency"] = string(next.PayrollFrequency)
		}
		switch {
		case input.ClearStartDate:
			next.StartDate = nil
			changes["start_date"] = nil
		case input.StartDate != nil:
			next.StartDate = dateOrNil(input.StartDate)
			changes["start_date"] = next.StartDate.Format("2006-01-02")
		}
		switch {
		case input.ClearEndDate:
			next.EndDate = nil
			changes["end_date"] = nil
		case input.EndDate != nil:
			next.EndDate = dateOrNil(input.EndDate)
			changes["end_date"] = next.EndDate.Format("2006-01-02")
		}
		if errs := validateWindow(next.StartDate, next.EndDate); errs != nil {
			return domain.NewValidationErrors(errs)
		}

		next.Status = domain.DerivePackageStatus(now, next.StartDate, next.EndDate)
		if next.Status != current.Status {
			changes["status"] = string(next.Status)
		}
		if len(changes) == 0 {
			pkg = current
			return nil
		}
		next.UpdatedAt = now

		pkg, err = s.packages.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update insurance package: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeInsurancePackage,
			EntityID:   pkg.ID,
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

	s.log.InfoContext(ctx, "insurance package updated",
		slog.String("package_id", pkg.ID.String()),
		slog.String("status", string(pkg.Status)),
	)

	return pkg, nil
}

// Get returns a package by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error) {
	return s.packages.GetByID(ctx, id)
}

// List returns one page of packages matching the filter.
func (s *Service) List(ctx context.Context, filter domain.InsurancePackageFilter, page domain.PageRequest) (domain.Page[domain.InsurancePackage], error) {
	if err := page.Validate(); err != nil {
		return domain.Page[domain.InsurancePackage]{}, err
	}
	return s.packages.Find(ctx, filter, page)
}
