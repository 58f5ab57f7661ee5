package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

type enrollmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
	ExistsLive(ctx context.Context, userID, planID uuid.UUID) (bool, error)
	Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	End(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeEnded bool) ([]domain.Enrollment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service enrolls users in plans. A user holds at most one live enrollment
// per plan.
type Service struct {
	enrollments enrollmentRepo
	users       userRepo
	plans       planRepo
	revisions   revisionLog
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Enrollment service.
func NewService(
	log *slog.Logger,
	enrollments enrollmentRepo,
	users userRepo,
	plans planRepo,
	revisions revisionLog,
	tx txManager,
) *Service {
	return &Service{
		enrollments: enrollments,
		users:       users,
		plans:       plans,
		revisions:   revisions,
		tx:          tx,
		log:         log.With("service", "enrollment"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateInput holds the parameters for enrolling a user in a plan.
type CreateInput struct {
	UserID         uuid.UUID
	PlanID         uuid.UUID
	ElectionAmount decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if !i.ElectionAmount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "election_amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create enrolls the user in the plan, snapshotting the plan's current
// contribution. A live enrollment for the same pair yields domain.ErrConflict.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Enrollment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()

	var enrollment *domain.Enrollment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, input.UserID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		plan, err := s.plans.GetByID(txCtx, input.PlanID)
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}

		exists, err := s.enrollments.ExistsLive(txCtx, input.UserID, input.PlanID)
		if err != nil {
			return fmt.Errorf("check live enrollment: %w", err)
		}
		if exists {
			return fmt.Errorf("user %s already enrolled in plan %s: %w", input.UserID, input.PlanID, domain.ErrConflict)
		}

		enrollment, err = s.enrollments.Create(txCtx, &domain.Enrollment{
			ID:               uuid.New(),
			UserID:           input.UserID,
			PlanID:           input.PlanID,
			ElectionAmount:   input.ElectionAmount,
			PlanContribution: plan.Contribution,
			CreatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeEnrollment,
			EntityID:   enrollment.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"user_id":           input.UserID.String(),
				"plan_id":           input.PlanID.String(),
				"election_amount":   input.ElectionAmount.String(),
				"plan_contribution": plan.Contribution.String(),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "enrollment created",
		slog.String("enrollment_id", enrollment.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("plan_id", input.PlanID.String()),
	)

	return enrollment, nil
}

// End soft-deletes a live enrollment, freeing the (user, plan) pair.
func (s *Service) End(ctx context.Context, id uuid.UUID) error {
	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.enrollments.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get enrollment: %w", err)
		}
		if !current.IsLive() {
			return fmt.Errorf("enrollment %s already ended: %w", id, domain.ErrInvalidStateTransition)
		}

		ended, err := s.enrollments.End(txCtx, id, now)
		if err != nil {
			return fmt.Errorf("end enrollment: %w", err)
		}
		if !ended {
			return fmt.Errorf("enrollment %s already ended: %w", id, domain.ErrInvalidStateTransition)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeEnrollment,
			EntityID:   id,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeDelete,
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "enrollment ended", slog.String("enrollment_id", id.String()))
	return nil
}

// Get returns an enrollment by ID, live or ended.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	return s.enrollments.GetByID(ctx, id)
}

// ListByUser returns the user's enrollments, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, includeEnded bool) ([]domain.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID, includeEnded)
}
