package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

type revisionStore interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, id uuid.UUID) ([]domain.Revision, error)
}

// Service reads the append-only revision log.
type Service struct {
	revisions revisionStore
	log       *slog.Logger
}

// NewService creates a new History service.
func NewService(log *slog.Logger, revisions revisionStore) *Service {
	return &Service{
		revisions: revisions,
		log:       log.With("service", "history"),
	}
}

// HistoryOf returns the revisions of one entity in ascending revision order.
// An entity without revisions yields an empty slice.
func (s *Service) HistoryOf(ctx context.Context, entityType domain.EntityType, id uuid.UUID) ([]domain.Revision, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	revs, err := s.revisions.ListByEntity(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	if revs == nil {
		revs = []domain.Revision{}
	}
	return revs, nil
}
