// Package revision implements the append-only change history store using PostgreSQL.
package revision

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const table = "revisions"

// Repo provides revision persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new revision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append records a revision and returns its number. When called inside
// RunInTx the revision commits or rolls back with the change it describes.
func (r *Repo) Append(ctx context.Context, rev domain.Revision) (int64, error) {
	changes := rev.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	ts := rev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns("entity_type", "entity_id", "timestamp", "actor", "change_type", "changes").
		Values(string(rev.EntityType), rev.EntityID, ts, rev.Actor, string(rev.ChangeType), changes).
		Suffix("RETURNING revision").
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "revision of "+rev.EntityType.String(), rev.EntityID)
	}
	return n, nil
}

// ListByEntity returns the entity's revisions in ascending order.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, id uuid.UUID) ([]domain.Revision, error) {
	query, args, err := postgres.Builder.
		Select("revision", "entity_type", "entity_id", "timestamp", "actor", "change_type", "changes").
		From(table).
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": id}).
		OrderBy("revision ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []revisionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "revision of "+entityType.String(), id)
	}

	out := make([]domain.Revision, len(rows))
	for i, row := range rows {
		out[i] = domain.Revision{
			Revision:   row.Revision,
			EntityType: domain.EntityType(row.EntityType),
			EntityID:   row.EntityID,
			Timestamp:  row.Timestamp,
			Actor:      row.Actor,
			ChangeType: domain.ChangeType(row.ChangeType),
			Changes:    row.Changes,
		}
	}
	return out, nil
}

type revisionRow struct {
	Revision   int64          `db:"revision"`
	EntityType string         `db:"entity_type"`
	EntityID   uuid.UUID      `db:"entity_id"`
	Timestamp  time.Time      `db:"timestamp"`
	Actor      string         `db:"actor"`
	ChangeType string         `db:"change_type"`
	Changes    map[string]any `db:"changes"`
}
