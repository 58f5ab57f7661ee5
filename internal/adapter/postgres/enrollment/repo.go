// Package enrollment implements the Enrollment repository using PostgreSQL.
package enrollment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const (
	table = "enrollments"

	// liveUniqueIndex enforces one live enrollment per (user, plan).
	liveUniqueIndex = "enrollments_live_user_plan_key"
)

var columns = []string{"id", "user_id", "plan_id", "election_amount", "plan_contribution", "created_at", "deleted_at"}

// Repo provides enrollment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new enrollment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an enrollment, live or ended.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row enrollmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "enrollment", id)
	}
	e := row.toDomain()
	return &e, nil
}

// ExistsLive reports whether the user has a live enrollment in the plan.
func (r *Repo) ExistsLive(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.Select("1").From(table).
		Where(sq.Eq{"user_id": userID, "plan_id": planID, "deleted_at": nil}).
		Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check live enrollment: %w", err)
	}
	return exists, nil
}

// Create inserts a live enrollment. A concurrent live duplicate is reported as
// domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Insert(table).
		Columns("id", "user_id", "plan_id", "election_amount", "plan_contribution", "created_at").
		Values(e.ID, e.UserID, e.PlanID, e.ElectionAmount, e.PlanContribution, e.CreatedAt))
	if err != nil {
		if postgres.IsUniqueViolation(err, liveUniqueIndex) {
			return nil, fmt.Errorf("user %s already enrolled in plan %s: %w", e.UserID, e.PlanID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "enrollment", e.ID)
	}
	return r.GetByID(ctx, e.ID)
}

// End soft-deletes a live enrollment. It reports false when the enrollment
// was already ended or does not exist.
func (r *Repo) End(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Update(table).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "deleted_at": nil}))
	if err != nil {
		return false, postgres.MapError(err, "enrollment", id)
	}
	return n == 1, nil
}

// ListByUser returns the user's enrollments, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, includeEnded bool) ([]domain.Enrollment, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id ASC")
	if !includeEnded {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []enrollmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "enrollment", uuid.Nil)
	}

	out := make([]domain.Enrollment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type enrollmentRow struct {
	ID               uuid.UUID       `db:"id"`
	UserID           uuid.UUID       `db:"user_id"`
	PlanID           uuid.UUID       `db:"plan_id"`
	ElectionAmount   decimal.Decimal `db:"election_amount"`
	PlanContribution decimal.Decimal `db:"plan_contribution"`
	CreatedAt        time.Time       `db:"created_at"`
	DeletedAt        *time.Time      `db:"deleted_at"`
}

func (row enrollmentRow) toDomain() domain.Enrollment {
	return domain.Enrollment{
		ID:               row.ID,
		UserID:           row.UserID,
		PlanID:           row.PlanID,
		ElectionAmount:   row.ElectionAmount,
		PlanContribution: row.PlanContribution,
		CreatedAt:        row.CreatedAt,
		DeletedAt:        row.DeletedAt,
	}
}
