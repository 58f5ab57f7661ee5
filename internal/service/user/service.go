package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/heartmarshall/insurance-admin/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams, actor string, at time.Time) (*domain.User, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, actor string, at time.Time) error
	AddFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error
	RemoveFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error
	Find(ctx context.Context, f domain.UserFilter, page domain.PageRequest) (domain.Page[domain.User], error)
}

type companyRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// directory is the external identity provider holding login accounts.
type directory interface {
	CreateAccount(ctx context.Context, u *domain.User) error
	UpdateAccount(ctx context.Context, u *domain.User) error
	SendInvitation(ctx context.Context, u *domain.User) error
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages users and keeps the identity directory in step with them.
type Service struct {
	users     userRepo
	companies companyRepo
	directory directory
	revisions revisionLog
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new User service.
func NewService(
	log *slog.Logger,
	users userRepo,
	companies companyRepo,
	dir directory,
	revisions revisionLog,
	tx txManager,
) *Service {
	return &Service{
		users:     users,
		companies: companies,
		directory: dir,
		revisions: revisions,
		tx:        tx,
		log:       log.With("service", "user"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func actorFrom(ctx context.Context) string {
	return ctxutil.ActorOr(ctx, domain.SystemActor)
}

func functionNames(fns []domain.UserFunction) []string {
	out := make([]string, len(fns))
	for i, f := range fns {
		out[i] = string(f)
	}
	return out
}
