package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Deactivate moves an ACTIVE company to DEACTIVATED and deactivates every
// user of the company that is not already INACTIVE, in one transaction.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	actor := actorFrom(ctx)
	now := s.now()

	var (
		company     *domain.Company
		deactivated []uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if current.Status != domain.CompanyStatusActive {
			return domain.NewStateError("company "+id.String(), current.Status, "deactivate")
		}

		if err := s.companies.SetStatus(txCtx, id, domain.CompanyStatusDeactivated, actor, now); err != nil {
			return fmt.Errorf("set company status: %w", err)
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeCompany,
			EntityID:   id,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    map[string]any{"status": string(domain.CompanyStatusDeactivated)},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		deactivated, err = s.users.SetStatusByCompany(txCtx, id, domain.UserStatusInactive, actor, now)
		if err != nil {
			return fmt.Errorf("deactivate users: %w", err)
		}
		if err := s.recordUsers(txCtx, deactivated, domain.UserStatusInactive, actor, now); err != nil {
			return fmt.Errorf("append user revisions: %w", err)
		}

		current.Status = domain.CompanyStatusDeactivated
		current.UpdatedBy = actor
		current.UpdatedAt = now
		company = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company deactivated",
		slog.String("company_id", id.String()),
		slog.Int("users_deactivated", len(deactivated)),
	)

	return company, nil
}
