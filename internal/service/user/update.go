package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Update applies a partial update to a user that is not INACTIVE. Functions,
// when given, are reconciled against the held set. The directory account is
// updated when the name or email changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := actorFrom(ctx)
	now := s.now()
	params, changes := updateParams(input)

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByIDForUpdate(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if current.Status == domain.UserStatusInactive {
			return domain.NewStateError("user "+current.ID.String(), current.Status, "update")
		}

		if input.Functions != nil {
			toAdd, toRemove := domain.ReconcileFunctions(current.Functions, *input.Functions)
			if err := s.users.RemoveFunctions(txCtx, current.ID, toRemove); err != nil {
				return fmt.Errorf("remove functions: %w", err)
			}
			if err := s.users.AddFunctions(txCtx, current.ID, toAdd); err != nil {
				return fmt.Errorf("add functions: %w", err)
			}
			if len(toAdd) > 0 || len(toRemove) > 0 {
				changes["functions"] = map[string]any{
					"added":   functionNames(toAdd),
					"removed": functionNames(toRemove),
				}
			}
		}

		if len(changes) == 0 {
			user = current
			return nil
		}

		user, err = s.users.Update(txCtx, current.ID, params, actor, now)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeUser,
			EntityID:   user.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}

		if identityChanged(current, user) {
			if err := s.directory.UpdateAccount(txCtx, user); err != nil {
				return fmt.Errorf("update directory account: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", user.ID.String()),
		slog.Int("fields", len(changes)),
	)

	return user, nil
}

func identityChanged(before, after *domain.User) bool {
	return before.FirstName != after.FirstName ||
		before.LastName != after.LastName ||
		before.Email != after.Email
}

func updateParams(input UpdateInput) (domain.UserUpdateParams, map[string]any) {
	var params domain.UserUpdateParams
	changes := make(map[string]any)

	if input.FirstName != nil {
		v := domain.NormalizeName(*input.FirstName)
		params.FirstName = &v
		changes["first_name"] = v
	}
	if input.MiddleName != nil {
		v := domain.NormalizeName(*input.MiddleName)
		params.MiddleName = &v
		changes["middle_name"] = v
	}
	if input.LastName != nil {
		v := domain.NormalizeName(*input.LastName)
		params.LastName = &v
		changes["last_name"] = v
	}
	if input.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*input.Email))
		params.Email = &v
		changes["email"] = v
	}
	if input.DateOfBirth != nil {
		v := domain.DateOf(*input.DateOfBirth)
		params.DateOfBirth = &v
		changes["date_of_birth"] = v.Format("2006-01-02")
	}
	if input.Addresses != nil {
		params.Addresses = input.Addresses
		changes["addresses"] = *input.Addresses
	}
	if input.Phones != nil {
		params.Phones = input.Phones
		changes["phones"] = *input.Phones
	}
	return params, changes
}
