package insurancepackage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// RecalcResult counts the outcome of one recalculation pass.
type RecalcResult struct {
	Scanned   int
	Updated   int
	Unchanged int
	Failed    int
}

// RecalculateStatuses re-derives the status of every package and persists
// the ones that changed, each in its own transaction with a system revision.
// A row that fails is logged and counted; the pass continues. Running it
// twice with the same clock changes nothing the second time.
func (s *Service) RecalculateStatuses(ctx context.Context) (RecalcResult, error) {
	var result RecalcResult
	now := s.now()
	started := time.Now()
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := s.packages.ListStatusBatch(ctx, after, s.batchSize)
		if err != nil {
			return result, fmt.Errorf("list packages after %s: %w", after, err)
		}

		for _, row := range batch {
			result.Scanned++
			target := domain.DerivePackageStatus(now, row.StartDate, row.EndDate)
			if target == row.Status {
				result.Unchanged++
				continue
			}

			changed, err := s.applyStatus(ctx, row, target, now)
			switch {
			case err != nil:
				result.Failed++
				s.log.WarnContext(ctx, "package status recalculation failed",
					slog.String("package_id", row.ID.String()),
					slog.String("from", string(row.Status)),
					slog.String("to", string(target)),
					slog.String("error", err.Error()),
				)
			case changed:
				result.Updated++
			default:
				result.Unchanged++
			}
		}

		if len(batch) < s.batchSize {
			break
		}
		after = batch[len(batch)-1].ID
	}

	s.log.InfoContext(ctx, "package statuses recalculated",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("failed", result.Failed),
		slog.Duration("took", time.Since(started)),
	)

	return result, nil
}

// applyStatus persists one transition. It reports false when the row no
// longer holds the status it was read with.
func (s *Service) applyStatus(ctx context.Context, row domain.PackageStatusRow, to domain.PackageStatus, now time.Time) (bool, error) {
	var changed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		changed, err = s.packages.UpdateStatus(txCtx, row.ID, row.Status, to, now)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if !changed {
			return nil
		}
		if _, err := s.revisions.Append(txCtx, domain.Revision{
			EntityType: domain.EntityTypeInsurancePackage,
			EntityID:   row.ID,
			Timestamp:  now,
			Actor:      domain.SystemActor,
			ChangeType: domain.ChangeTypeModify,
			Changes: map[string]any{
				"status": map[string]any{"old": string(row.Status), "new": string(to)},
			},
		}); err != nil {
			return fmt.Errorf("append revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}
