// Package claim implements the Claim repository using PostgreSQL.
package claim

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const table = "claims"

var columns = []string{
	"c.id", "c.claim_number", "c.status", "c.service_date", "c.consumer_id", "c.enrollment_id",
	"c.amount", "c.approved_amount", "c.denied_reason", "c.notes", "c.processed_date",
	"c.version", "c.created_at", "c.updated_at",
}

const returning = "RETURNING id, claim_number, status, service_date, consumer_id, enrollment_id, amount, " +
	"approved_amount, denied_reason, notes, processed_date, version, created_at, updated_at"

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new claim repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a claim by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table + " c").
		Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row claimRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	c := row.toDomain()
	return &c, nil
}

// Create inserts a claim.
func (r *Repo) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("id", "claim_number", "status", "service_date", "consumer_id", "enrollment_id",
			"amount", "notes", "version", "created_at", "updated_at").
		Values(c.ID, c.ClaimNumber, string(c.Status), c.ServiceDate, c.ConsumerID, c.EnrollmentID,
			c.Amount, c.Notes, c.Version, c.CreatedAt, c.UpdatedAt).
		Suffix(returning).ToSql()
	if err != nil {
		return nil, err
	}

	var row claimRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "claim", c.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Decide applies a decision to a PENDING claim in a single compare-and-set
// statement. A claim that is no longer PENDING yields
// domain.ErrInvalidStateTransition; a missing claim yields domain.ErrNotFound.
func (r *Repo) Decide(ctx context.Context, id uuid.UUID, d domain.ClaimDecision) (*domain.Claim, error) {
	query, args, err := decisionStatement(id, d).ToSql()
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	var row claimRow
	err = pgxscan.Get(ctx, q, &row, query, args...)
	if postgres.IsNoRows(err) {
		return nil, r.rejectDecision(ctx, q, id, d.Status)
	}
	if err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	out := row.toDomain()
	return &out, nil
}

func decisionStatement(id uuid.UUID, d domain.ClaimDecision) sq.UpdateBuilder {
	b := postgres.Builder.Update(table).
		Set("status", string(d.Status)).
		Set("processed_date", d.ProcessedDate).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", d.ProcessedDate).
		Where(sq.Eq{"id": id, "status": string(domain.ClaimStatusPending)}).
		Suffix(returning)
	if d.ApprovedAmount != nil {
		b = b.Set("approved_amount", *d.ApprovedAmount)
	}
	if d.DeniedReason != nil {
		b = b.Set("denied_reason", *d.DeniedReason)
	}
	if d.Notes != nil {
		b = b.Set("notes", *d.Notes)
	}
	return b
}

func (r *Repo) rejectDecision(ctx context.Context, q postgres.Querier, id uuid.UUID, to domain.ClaimStatus) error {
	query, args, err := postgres.Builder.Select("status").From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	var current string
	if err := q.QueryRow(ctx, query, args...).Scan(&current); err != nil {
		return postgres.MapError(err, "claim", id)
	}
	verb := "approve"
	if to == domain.ClaimStatusDenied {
		verb = "deny"
	}
	return domain.NewStateError("claim "+id.String(), domain.ClaimStatus(strings.TrimSpace(current)), verb)
}

// Find returns one page of claims matching the filter.
func (r *Repo) Find(ctx context.Context, f domain.ClaimFilter, page domain.PageRequest) (domain.Page[domain.Claim], error) {
	rows, err := postgres.FindPage[claimRow](ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.PageQuery{
		From:        table + " c",
		Columns:     columns,
		Where:       Spec(f),
		SortColumns: sortColumns,
		IDColumn:    "c.id",
	}, page)
	if err != nil {
		return domain.Page[domain.Claim]{}, err
	}
	return domain.MapPage(rows, claimRow.toDomain), nil
}

type claimRow struct {
	ID             uuid.UUID        `db:"id"`
	ClaimNumber    string           `db:"claim_number"`
	Status         string           `db:"status"`
	ServiceDate    time.Time        `db:"service_date"`
	ConsumerID     uuid.UUID        `db:"consumer_id"`
	EnrollmentID   uuid.UUID        `db:"enrollment_id"`
	Amount         decimal.Decimal  `db:"amount"`
	ApprovedAmount *decimal.Decimal `db:"approved_amount"`
	DeniedReason   *string          `db:"denied_reason"`
	Notes          *string          `db:"notes"`
	ProcessedDate  *time.Time       `db:"processed_date"`
	Version        int              `db:"version"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

func (row claimRow) toDomain() domain.Claim {
	return domain.Claim{
		ID:             row.ID,
		ClaimNumber:    row.ClaimNumber,
		Status:         domain.ClaimStatus(row.Status),
		ServiceDate:    row.ServiceDate,
		ConsumerID:     row.ConsumerID,
		EnrollmentID:   row.EnrollmentID,
		Amount:         row.Amount,
		ApprovedAmount: row.ApprovedAmount,
		DeniedReason:   row.DeniedReason,
		Notes:          row.Notes,
		ProcessedDate:  row.ProcessedDate,
		Version:        row.Version,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
