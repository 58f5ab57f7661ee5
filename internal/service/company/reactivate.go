package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Reactivate moves a DEACTIVATED company back to ACTIVE and reactivates its
// users according to the option: ALL users, only the SELECTED ids, or NONE.
// SELECTED with no ids is rejected with ErrConflict before anything is written.
func (s *Service) Reactivate(ctx context.Context, input ReactivateInput) (*ReactivateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Option == domain.UserReactivationSelected && len(input.SelectedUserIDs) == 0 {
		return nil, fmt.Errorf("reactivate company %s: SELECTED requires user ids: %w", input.CompanyID, domain.ErrConflict)
	}

	actor := actorFrom(ctx)
	now := s.now()
	result := &ReactivateResult{ReactivatedUserIDs: []uuid.UUID{}}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetByIDForUpdate(txCtx, input.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if current.Status != domain.CompanyStatusDeactivated {
			return domain.NewStateError("company "+input.CompanyID.String(), current.Status, "reactivate")
		}

		if err := s.companies.SetStatus(txCtx, input.CompanyID, domain.CompanyStatusActive, actor, now); err != nil {
			return fmt.Errorf("set company status: %w", err)
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeCompany,
			EntityID:   input.CompanyID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes: map[string]any{
				"status":                   string(domain.CompanyStatusActive),
				"user_reactivation_option": string(input.Option),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		var ids []uuid.UUID
		switch input.Option {
		case domain.UserReactivationAll:
			ids, err = s.users.SetStatusByCompany(txCtx, input.CompanyID, domain.UserStatusActive, actor, now)
		case domain.UserReactivationSelected:
			ids, err = s.users.SetStatusForIDs(txCtx, input.CompanyID, input.SelectedUserIDs, domain.UserStatusActive, actor, now)
		}
		if err != nil {
			return fmt.Errorf("reactivate users: %w", err)
		}
		if err := s.recordUsers(txCtx, ids, domain.UserStatusActive, actor, now); err != nil {
			return fmt.Errorf("append user revisions: %w", err)
		}
		if ids != nil {
			result.ReactivatedUserIDs = ids
		}

		current.Status = domain.CompanyStatusActive
		current.UpdatedBy = actor
		current.UpdatedAt = now
		result.Company = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company reactivated",
		slog.String("company_id", input.CompanyID.String()),
		slog.String("option", string(input.Option)),
		slog.Int("users_reactivated", len(result.ReactivatedUserIDs)),
	)

	return result, nil
}
