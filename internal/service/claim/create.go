package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Create files a new PENDING claim. The claim number defaults to the claim id.
// The consumer and a live enrollment must exist, and the enrollment must
// belong to the consumer.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	now := s.now()
	id := uuid.New()

	number := strings.TrimSpace(input.ClaimNumber)
	if number == "" {
		number = id.String()
	}

	var claim *domain.Claim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, input.ConsumerID); err != nil {
			return fmt.Errorf("get consumer: %w", err)
		}
		enrollment, err := s.enrollments.GetByID(txCtx, input.EnrollmentID)
		if err != nil {
			return fmt.Errorf("get enrollment: %w", err)
		}
		if !enrollment.IsLive() {
			return fmt.Errorf("enrollment %s has ended: %w", enrollment.ID, domain.ErrNotFound)
		}
		if enrollment.UserID != input.ConsumerID {
			return domain.NewValidationError("enrollment_id", "enrollment does not belong to the consumer")
		}

		claim, err = s.claims.Create(txCtx, &domain.Claim{
			ID:           id,
			ClaimNumber:  number,
			Status:       domain.ClaimStatusPending,
			ServiceDate:  domain.DateOf(input.ServiceDate),
			ConsumerID:   input.ConsumerID,
			EnrollmentID: input.EnrollmentID,
			Amount:       input.Amount,
			Notes:        domain.TrimOrNil(input.Notes),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create claim: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeClaim,
			EntityID:   claim.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"claim_number": claim.ClaimNumber,
				"status":       string(claim.Status),
				"amount":       claim.Amount.String(),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "claim created",
		slog.String("claim_id", claim.ID.String()),
		slog.String("consumer_id", claim.ConsumerID.String()),
		slog.String("amount", claim.Amount.String()),
	)

	return claim, nil
}
