package insurancepackage

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// DefaultBatchSize is the number of packages read per recalculation batch.
const DefaultBatchSize = 500

type packageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error)
	Create(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error)
	Update(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error)
	ListStatusBatch(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.PackageStatusRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PackageStatus, at time.Time) (bool, error)
	Find(ctx context.Context, f domain.InsurancePackageFilter, page domain.PageRequest) (domain.Page[domain.InsurancePackage], error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

type revisionLog interface {
	Append(ctx context.Context, rev domain.Revision) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages insurance packages and keeps their derived status current.
type Service struct {
	packages  packageRepo
	companies companyRepo
	revisions revisionLog
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
	batchSize int
}

// NewService creates a new InsurancePackage service. A non-positive batchSize
// selects DefaultBatchSize.
func NewService(
	log *slog.Logger,
	packages packageRepo,
	companies companyRepo,
	revisions revisionLog,
	tx txManager,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		packages:  packages,
		companies: companies,
		revisions: revisions,
		tx:        tx,
		log:       log.With("service", "insurance_package"),
		now:       func() time.Time { return time.Now().UTC() },
		batchSize: batchSize,
	}
}
