// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const table = "companies"

var columns = []string{
	"c.id", "c.name", "c.country_code", "c.addresses", "c.phones", "c.email", "c.website",
	"c.status", "c.created_by", "c.created_at", "c.updated_by", "c.updated_at",
}

const returning = "RETURNING id, name, country_code, addresses, phones, email, website, " +
	"status, created_by, created_at, updated_by, updated_at"

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate returns a company and locks its row until the surrounding
// transaction ends, serializing concurrent status transitions.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Company, error) {
	b := postgres.Builder.Select(columns...).From(table + " c").Where(sq.Eq{"c.id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	c := row.toDomain()
	return &c, nil
}

// Create inserts a new company and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("id", "name", "country_code", "addresses", "phones", "email", "website",
			"status", "created_by", "created_at", "updated_by", "updated_at").
		Values(c.ID, c.Name, c.CountryCode, nonNil(c.Addresses), nonNil(c.Phones), c.Email, c.Website,
			string(c.Status), c.CreatedBy, c.CreatedAt, c.UpdatedBy, c.UpdatedAt).
		Suffix(returning).ToSql()
	if err != nil {
		return nil, err
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "company", c.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams, actor string, at time.Time) (*domain.Company, error) {
	b := postgres.Builder.Update(table).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.CountryCode != nil {
		b = b.Set("country_code", *params.CountryCode)
	}
	if params.Addresses != nil {
		b = b.Set("addresses", nonNil(*params.Addresses))
	}
	if params.Phones != nil {
		b = b.Set("phones", nonNil(*params.Phones))
	}
	if params.Email != nil {
		b = b.Set("email", *params.Email)
	}
	if params.Website != nil {
		b = b.Set("website", *params.Website)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var row companyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	out := row.toDomain()
	return &out, nil
}

// SetStatus changes the company status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus, actor string, at time.Time) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "company", id)
	}
	if n == 0 {
		return postgres.NotFound("company", id)
	}
	return nil
}

// Find returns one page of companies matching the filter.
func (r *Repo) Find(ctx context.Context, f domain.CompanyFilter, page domain.PageRequest) (domain.Page[domain.Company], error) {
	rows, err := postgres.FindPage[companyRow](ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.PageQuery{
		From:        table + " c",
		Columns:     columns,
		Where:       Spec(f),
		SortColumns: sortColumns,
		IDColumn:    "c.id",
	}, page)
	if err != nil {
		return domain.Page[domain.Company]{}, err
	}
	return domain.MapPage(rows, companyRow.toDomain), nil
}

type companyRow struct {
	ID          uuid.UUID        `db:"id"`
	Name        string           `db:"name"`
	CountryCode string           `db:"country_code"`
	Addresses   []domain.Address `db:"addresses"`
	Phones      []domain.Phone   `db:"phones"`
	Email       *string          `db:"email"`
	Website     *string          `db:"website"`
	Status      string           `db:"status"`
	CreatedBy   string           `db:"created_by"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedBy   string           `db:"updated_by"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

func (row companyRow) toDomain() domain.Company {
	return domain.Company{
		ID:          row.ID,
		Name:        row.Name,
		CountryCode: row.CountryCode,
		Addresses:   nonNil(row.Addresses),
		Phones:      nonNil(row.Phones),
		Email:       row.Email,
		Website:     row.Website,
		Status:      domain.CompanyStatus(row.Status),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedBy:   row.UpdatedBy,
		UpdatedAt:   row.UpdatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
