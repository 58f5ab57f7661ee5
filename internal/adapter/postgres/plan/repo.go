// Package plan implements the Plan and PlanType repository using PostgreSQL.
package plan

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const (
	table     = "plans"
	typeTable = "plan_types"
	typeJoin  = "plan_types pt ON pt.id = p.type_id"
)

var columns = []string{
	"p.id", "p.insurance_package_id", "p.name", "p.contribution", "p.created_at", "p.updated_at",
	"pt.id AS type_id", "pt.code AS type_code", "pt.name AS type_name",
}

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a plan with its type.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table + " p").Join(typeJoin).
		Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row planRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan", id)
	}
	p := row.toDomain()
	return &p, nil
}

// Create inserts a plan. p.Type.ID must reference an existing plan type.
func (r *Repo) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Insert(table).
		Columns("id", "insurance_package_id", "name", "type_id", "contribution", "created_at", "updated_at").
		Values(p.ID, p.InsurancePackageID, p.Name, p.Type.ID, p.Contribution, p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "plan", p.ID)
	}
	return r.GetByID(ctx, p.ID)
}

// UpdateContribution changes the plan contribution. Enrollment snapshots are untouched.
func (r *Repo) UpdateContribution(ctx context.Context, id uuid.UUID, contribution decimal.Decimal, at time.Time) (*domain.Plan, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Update(table).
		Set("contribution", contribution).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "plan", id)
	}
	if n == 0 {
		return nil, postgres.NotFound("plan", id)
	}
	return r.GetByID(ctx, id)
}

// Find returns one page of plans matching the filter.
func (r *Repo) Find(ctx context.Context, f domain.PlanFilter, page domain.PageRequest) (domain.Page[domain.Plan], error) {
	rows, err := postgres.FindPage[planRow](ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.PageQuery{
		From:        table + " p",
		Joins:       []string{typeJoin},
		Columns:     columns,
		Where:       Spec(f),
		SortColumns: sortColumns,
		IDColumn:    "p.id",
	}, page)
	if err != nil {
		return domain.Page[domain.Plan]{}, err
	}
	return domain.MapPage(rows, planRow.toDomain), nil
}

// GetType returns a plan type by id.
func (r *Repo) GetType(ctx context.Context, id uuid.UUID) (*domain.PlanType, error) {
	query, args, err := postgres.Builder.Select("id", "code", "name").From(typeTable).
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var pt domain.PlanType
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &pt, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan type", id)
	}
	return &pt, nil
}

// ListTypes returns all plan types ordered by code.
func (r *Repo) ListTypes(ctx context.Context) ([]domain.PlanType, error) {
	query, args, err := postgres.Builder.Select("id", "code", "name").From(typeTable).
		OrderBy("code ASC").ToSql()
	if err != nil {
		return nil, err
	}

	types := []domain.PlanType{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &types, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan type", uuid.Nil)
	}
	return types, nil
}

type planRow struct {
	ID                 uuid.UUID       `db:"id"`
	InsurancePackageID uuid.UUID       `db:"insurance_package_id"`
	Name               string          `db:"name"`
	Contribution       decimal.Decimal `db:"contribution"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
	TypeID             uuid.UUID       `db:"type_id"`
	TypeCode           string          `db:"type_code"`
	TypeName           string          `db:"type_name"`
}

func (row planRow) toDomain() domain.Plan {
	return domain.Plan{
		ID:                 row.ID,
		InsurancePackageID: row.InsurancePackageID,
		Name:               row.Name,
		Type:               domain.PlanType{ID: row.TypeID, Code: row.TypeCode, Name: row.TypeName},
		Contribution:       row.Contribution,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
