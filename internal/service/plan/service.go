package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	UpdateContribution(ctx context.Context, id uuid.UUID, contribution decimal.Decimal, at time.Time) (*domain.Plan, error)
	Find(ctx context.Context, f domain.PlanFilter, page domain.PageRequest) (domain.Page[domain.Plan], error)
	GetType(ctx context.Context, id uuid.UUID) (*domain.PlanType, error)
	ListTypes(ctx context.Context) ([]domain.PlanType, error)
}

type packageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error)
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the plans offered inside insurance packages.
type Service struct {
	plans     planRepo
	packages  packageRepo
	revisions revisionLog
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Plan service.
func NewService(log *slog.Logger, plans planRepo, packages packageRepo, revisions revisionLog, tx txManager) *Service {
	return &Service{
		plans:     plans,
		packages:  packages,
		revisions: revisions,
		tx:        tx,
		log:       log.With("service", "plan"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateInput holds the parameters for creating a plan.
type CreateInput struct {
	InsurancePackageID uuid.UUID
	Name               string
	TypeID             uuid.UUID
	Contribution       decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.InsurancePackageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "insurance_package_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.TypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	if !i.Contribution.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "contribution", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create adds a plan to an existing package. An unknown plan type is a
// conflicting reference rather than a missing resource.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Plan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()

	var plan *domain.Plan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.packages.GetByID(txCtx, input.InsurancePackageID); err != nil {
			return fmt.Errorf("get insurance package: %w", err)
		}
		planType, err := s.plans.GetType(txCtx, input.TypeID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("invalid plan-type reference %s: %w", input.TypeID, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("get plan type: %w", err)
		}

		plan, err = s.plans.Create(txCtx, &domain.Plan{
			ID:                 uuid.New(),
			InsurancePackageID: input.InsurancePackageID,
			Name:               domain.NormalizeName(input.Name),
			Type:               *planType,
			Contribution:       input.Contribution,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}

		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypePlan,
			EntityID:   plan.ID,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeAdd,
			Changes: map[string]any{
				"name":         plan.Name,
				"type":         planType.Code,
				"contribution": plan.Contribution.String(),
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("insurance_package_id", plan.InsurancePackageID.String()),
	)

	return plan, nil
}

// UpdateContribution changes what new enrollments snapshot. Existing
// enrollments keep the contribution they were created with.
func (s *Service) UpdateContribution(ctx context.Context, id uuid.UUID, contribution decimal.Decimal) (*domain.Plan, error) {
	if !contribution.IsPositive() {
		return nil, domain.NewValidationError("contribution", "must be greater than 0")
	}

	actor := ctxutil.ActorOr(ctx, domain.SystemActor)
	now := s.now()

	var plan *domain.Plan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		plan, err = s.plans.UpdateContribution(txCtx, id, contribution, now)
		if err != nil {
			return fmt.Errorf("update contribution: %w", err)
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypePlan,
			EntityID:   id,
			Timestamp:  now,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    map[string]any{"contribution": contribution.String()},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan contribution updated",
		slog.String("plan_id", id.String()),
		slog.String("contribution", contribution.String()),
	)

	return plan, nil
}

// Get returns a plan by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

// List returns one page of plans matching the filter.
func (s *Service) List(ctx context.Context, filter domain.PlanFilter, page domain.PageRequest) (domain.Page[domain.Plan], error) {
	if err := page.Validate(); err != nil {
		return domain.Page[domain.Plan]{}, err
	}
	return s.plans.Find(ctx, filter, page)
}

// ListTypes returns every plan type.
func (s *Service) ListTypes(ctx context.Context) ([]domain.PlanType, error) {
	return s.plans.ListTypes(ctx)
}
