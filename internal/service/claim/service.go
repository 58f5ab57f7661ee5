package claim

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

type claimRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	Decide(ctx context.Context, id uuid.UUID, d domain.ClaimDecision) (*domain.Claim, error)
	Find(ctx context.Context, f domain.ClaimFilter, page domain.PageRequest) (domain.Page[domain.Claim], error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type enrollmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service files claims and moves them from PENDING to APPROVED or DENIED.
type Service struct {
	claims      claimRepo
	users       userRepo
	enrollments enrollmentRepo
	revisions   revisionLog
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Claim service.
func NewService(
	log *slog.Logger,
	claims claimRepo,
	users userRepo,
	enrollments enrollmentRepo,
	revisions revisionLog,
	tx txManager,
) *Service {
	return &Service{
		claims:      claims,
		users:       users,
		enrollments: enrollments,
		revisions:   revisions,
		tx:          tx,
		log:         log.With("service", "claim"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func actorFrom(ctx context.Context) string {
	return ctxutil.ActorOr(ctx, domain.SystemActor)
}
