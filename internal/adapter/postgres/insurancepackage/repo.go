// Package insurancepackage implements the InsurancePackage repository using PostgreSQL.
package insurancepackage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const table = "insurance_packages"

var columns = []string{
	"ip.id", "ip.company_id", "ip.name", "ip.start_date", "ip.end_date",
	"ip.payroll_frequency", "ip.status", "ip.created_at", "ip.updated_at",
}

const returning = "RETURNING id, company_id, name, start_date, end_date, payroll_frequency, status, created_at, updated_at"

// Repo provides insurance package persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new insurance package repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a package by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table + " ip").
		Where(sq.Eq{"ip.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row packageRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "insurance package", id)
	}
	p := row.toDomain()
	return &p, nil
}

// Create inserts a package.
func (r *Repo) Create(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("id", "company_id", "name", "start_date", "end_date", "payroll_frequency", "status", "created_at", "updated_at").
		Values(p.ID, p.CompanyID, p.Name, p.StartDate, p.EndDate, string(p.PayrollFrequency), string(p.Status), p.CreatedAt, p.UpdatedAt).
		Suffix(returning).ToSql()
	if err != nil {
		return nil, err
	}

	var row packageRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "insurance package", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Update writes every mutable field of p, including its derived status.
func (r *Repo) Update(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("name", p.Name).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("payroll_frequency", string(p.PayrollFrequency)).
		Set("status", string(p.Status)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning).ToSql()
	if err != nil {
		return nil, err
	}

	var row packageRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "insurance package", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// ListStatusBatch returns up to limit packages ordered by id, starting after
// afterID. Pass uuid.Nil for the first batch.
func (r *Repo) ListStatusBatch(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.PackageStatusRow, error) {
	query, args, err := postgres.Builder.Select("id", "start_date", "end_date", "status").
		From(table).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []statusRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "insurance package", uuid.Nil)
	}

	out := make([]domain.PackageStatusRow, len(rows))
	for i, row := range rows {
		out[i] = domain.PackageStatusRow{
			ID:        row.ID,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Status:    domain.PackageStatus(row.Status),
		}
	}
	return out, nil
}

// UpdateStatus sets the status of one package only if it still holds from.
// It reports whether the row was changed.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PackageStatus, at time.Time) (bool, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Update(table).
		Set("status", string(to)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": string(from)}))
	if err != nil {
		return false, postgres.MapError(err, "insurance package", id)
	}
	return n == 1, nil
}

// Find returns one page of packages matching the filter.
func (r *Repo) Find(ctx context.Context, f domain.InsurancePackageFilter, page domain.PageRequest) (domain.Page[domain.InsurancePackage], error) {
	rows, err := postgres.FindPage[packageRow](ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.PageQuery{
		From:        table + " ip",
		Columns:     columns,
		Where:       Spec(f),
		SortColumns: sortColumns,
		IDColumn:    "ip.id",
	}, page)
	if err != nil {
		return domain.Page[domain.InsurancePackage]{}, err
	}
	return domain.MapPage(rows, packageRow.toDomain), nil
}

type packageRow struct {
	ID               uuid.UUID  `db:"id"`
	CompanyID        uuid.UUID  `db:"company_id"`
	Name             string     `db:"name"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	PayrollFrequency string     `db:"payroll_frequency"`
	Status           string     `db:"status"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (row packageRow) toDomain() domain.InsurancePackage {
	return domain.InsurancePackage{
		ID:               row.ID,
		CompanyID:        row.CompanyID,
		Name:             row.Name,
		StartDate:        row.StartDate,
		EndDate:          row.EndDate,
		PayrollFrequency: domain.PayrollFrequency(row.PayrollFrequency),
		Status:           domain.PackageStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

type statusRow struct {
	ID        uuid.UUID  `db:"id"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Status    string     `db:"status"`
}
