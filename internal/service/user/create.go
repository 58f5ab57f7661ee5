package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Create registers a PENDING user in an ACTIVE company, then provisions the
// directory account and sends the invitation. A directory failure rolls the
// user back.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	now := s.now()

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		company, err := s.companies.GetByIDForUpdate(txCtx, input.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if !company.IsActive() {
			return domain.NewStateError("company "+company.ID.String(), company.Status, "add users")
		}

		user, err = s.users.Create(txCtx, &domain.User{
			ID:          uuid.New(),
			CompanyID:   input.CompanyID,
			FirstName:   domain.NormalizeName(input.FirstName),
			MiddleName:  domain.TrimOrNil(input.MiddleName),
			LastName:    domain.NormalizeName(input.LastName),
			Username:    strings.ToLower(strings.TrimSpace(input.Username)),
			Email:       strings.ToLower(strings.TrimSpace(input.Email)),
			SSN:         normalizeSSN(input.SSN),
			DateOfBirth: domain.DateOf(input.DateOfBirth),
			Addresses:   input.Addresses,
			Phones:      input.Phones,
			Status:      domain.UserStatusPending,
			Functions:   input.Functions,
			CreatedBy:   actor,
			CreatedAt:   now,
			UpdatedBy:   actor,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeUser,
			EntityID:   user.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"company_id": user.CompanyID.String(),
				"username":   user.Username,
				"status":     string(user.Status),
				"functions":  functionNames(user.Functions),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		if err := s.directory.CreateAccount(txCtx, user); err != nil {
			return fmt.Errorf("create directory account: %w", err)
		}
		if err := s.directory.SendInvitation(txCtx, user); err != nil {
			return fmt.Errorf("send invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("company_id", user.CompanyID.String()),
		slog.String("actor", actor),
	)

	return user, nil
}
