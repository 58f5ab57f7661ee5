package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Deactivate moves a user to INACTIVE.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.setStatus(ctx, id, domain.UserStatusInactive, "deactivate")
}

// Reactivate moves an INACTIVE or PENDING user to ACTIVE.
func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.setStatus(ctx, id, domain.UserStatusActive, "reactivate")
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, to domain.UserStatus, op string) (*domain.User, error) {
	actor := actorFrom(ctx)
	now := s.now()

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if current.Status == to {
			return domain.NewStateError("user "+id.String(), current.Status, op)
		}

		if err := s.users.SetStatus(txCtx, id, to, actor, now); err != nil {
			return fmt.Errorf("set user status: %w", err)
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    map[string]any{"status": string(to)},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		current.Status = to
		current.UpdatedBy = actor
		current.UpdatedAt = now
		user = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("user_id", id.String()),
		slog.String("status", string(to)),
	)

	return user, nil
}
