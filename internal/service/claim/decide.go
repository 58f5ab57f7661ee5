package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Approve moves a PENDING claim to APPROVED. Of two concurrent decisions on
// the same claim exactly one succeeds; the other gets
// domain.ErrInvalidStateTransition.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	amount := input.ApprovedAmount
	return s.decide(ctx, input.ClaimID, domain.ClaimDecision{
		Status:         domain.ClaimStatusApproved,
		ApprovedAmount: &amount,
		Notes:          domain.TrimOrNil(input.Notes),
	})
}

// Deny moves a PENDING claim to DENIED.
func (s *Service) Deny(ctx context.Context, input DenyInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(input.Reason)
	return s.decide(ctx, input.ClaimID, domain.ClaimDecision{
		Status:       domain.ClaimStatusDenied,
		DeniedReason: &reason,
		Notes:        domain.TrimOrNil(input.Notes),
	})
}

func (s *Service) decide(ctx context.Context, id uuid.UUID, d domain.ClaimDecision) (*domain.Claim, error) {
	actor := actorFrom(ctx)
	d.ProcessedDate = s.now()

	var claim *domain.Claim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		claim, err = s.claims.Decide(txCtx, id, d)
		if err != nil {
			return fmt.Errorf("decide claim: %w", err)
		}

		changes := map[string]any{"status": string(d.Status)}
		if d.ApprovedAmount != nil {
			changes["approved_amount"] = d.ApprovedAmount.String()
		}
		if d.DeniedReason != nil {
			changes["denied_reason"] = *d.DeniedReason
		}
		if d.Notes != nil {
			changes["notes"] = *d.Notes
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeClaim,
			EntityID:   id,
			Timestamp:  d.ProcessedDate,
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

	s.log.InfoContext(ctx, "claim decided",
		slog.String("claim_id", id.String()),
		slog.String("status", string(d.Status)),
		slog.String("actor", actor),
	)

	return claim, nil
}
