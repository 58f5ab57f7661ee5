package company

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams, actor string, at time.Time) (*domain.Company, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus, actor string, at time.Time) error
	Find(ctx context.Context, f domain.CompanyFilter, page domain.PageRequest) (domain.Page[domain.Company], error)
}

type userRepo interface {
	SetStatusByCompany(ctx context.Context, companyID uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error)
	SetStatusForIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error)
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the company lifecycle: creation, partial updates and
// the deactivate/reactivate transitions that cascade to the company's users.
type Service struct {
	companies companyRepo
	users     userRepo
	revisions revisionLog
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Company service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	users userRepo,
	revisions revisionLog,
	tx txManager,
) *Service {
	return &Service{
		companies: companies,
		users:     users,
		revisions: revisions,
		tx:        tx,
		log:       log.With("service", "company"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ReactivateResult reports a reactivated company and the users that came back with it.
type ReactivateResult struct {
	Company            *domain.Company
	ReactivatedUserIDs []uuid.UUID
}

func actorFrom(ctx context.Context) string {
	return ctxutil.ActorOr(ctx, domain.SystemActor)
}

// recordUsers appends one MOD revision per user whose status changed.
func (s *Service) recordUsers(ctx context.Context, ids []uuid.UUID, status domain.UserStatus, actor string, at time.Time) error {
	for _, id := range ids {
		if _, err := s.revisions.Append(ctx, domain.Revision{
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Timestamp:  at,
			Actor:      actor,
			ChangeType: domain.ChangeTypeModify,
			Changes:    map[string]any{"status": string(status)},
		}); err != nil {
			return err
		}
	}
	return nil
}
