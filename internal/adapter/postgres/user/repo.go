// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/insurance-admin/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

const (
	table          = "users"
	functionsTable = "user_functions"
)

var columns = []string{
	"u.id", "u.company_id", "u.first_name", "u.middle_name", "u.last_name", "u.username",
	"u.email", "u.ssn", "u.date_of_birth", "u.addresses", "u.phones", "u.status",
	"ARRAY(SELECT uf.function FROM user_functions uf WHERE uf.user_id = u.id ORDER BY uf.function) AS functions",
	"u.created_by", "u.created_at", "u.updated_by", "u.updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user with its functions.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a user and locks its row for the rest of the transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.User, error) {
	b := postgres.Builder.Select(columns...).From(table + " u").Where(sq.Eq{"u.id": id})
	if lock {
		b = b.Suffix("FOR UPDATE OF u")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := row.toDomain()
	return &u, nil
}

// Create inserts a user and its functions.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder.Insert(table).
		Columns("id", "company_id", "first_name", "middle_name", "last_name", "username", "email", "ssn",
			"date_of_birth", "addresses", "phones", "status", "created_by", "created_at", "updated_by", "updated_at").
		Values(u.ID, u.CompanyID, u.FirstName, u.MiddleName, u.LastName, u.Username, u.Email, u.SSN,
			u.DateOfBirth, nonNil(u.Addresses), nonNil(u.Phones), string(u.Status),
			u.CreatedBy, u.CreatedAt, u.UpdatedBy, u.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	if err := r.AddFunctions(ctx, u.ID, u.Functions); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, u.ID)
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams, actor string, at time.Time) (*domain.User, error) {
	b := postgres.Builder.Update(table).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(sq.Eq{"id": id})
	if params.FirstName != nil {
		b = b.Set("first_name", *params.FirstName)
	}
	if params.MiddleName != nil {
		b = b.Set("middle_name", *params.MiddleName)
	}
	if params.LastName != nil {
		b = b.Set("last_name", *params.LastName)
	}
	if params.Email != nil {
		b = b.Set("email", *params.Email)
	}
	if params.DateOfBirth != nil {
		b = b.Set("date_of_birth", *params.DateOfBirth)
	}
	if params.Addresses != nil {
		b = b.Set("addresses", nonNil(*params.Addresses))
	}
	if params.Phones != nil {
		b = b.Set("phones", nonNil(*params.Phones))
	}

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return nil, postgres.NotFound("user", id)
	}
	return r.GetByID(ctx, id)
}

// SetStatus changes one user's status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, actor string, at time.Time) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return postgres.NotFound("user", id)
	}
	return nil
}

// SetStatusByCompany moves every user of the company not already in status to
// status, returning the ids that changed.
func (r *Repo) SetStatusByCompany(ctx context.Context, companyID uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error) {
	return r.setStatusWhere(ctx, sq.Eq{"company_id": companyID}, status, actor, at)
}

// SetStatusForIDs is SetStatusByCompany restricted to ids. Ids belonging to
// other companies are ignored.
func (r *Repo) SetStatusForIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	return r.setStatusWhere(ctx, sq.And{sq.Eq{"company_id": companyID}, sq.Eq{"id": ids}}, status, actor, at)
}

func (r *Repo) setStatusWhere(ctx context.Context, where sq.Sqlizer, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(where).
		Where(sq.NotEq{"status": string(status)}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	ids := []uuid.UUID{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return ids, nil
}

// AddFunctions grants functions to the user. Already held functions are kept.
func (r *Repo) AddFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error {
	if len(fns) == 0 {
		return nil
	}
	b := postgres.Builder.Insert(functionsTable).Columns("user_id", "function")
	for _, f := range fns {
		b = b.Values(id, string(f))
	}
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b.Suffix("ON CONFLICT DO NOTHING")); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

// RemoveFunctions revokes functions from the user.
func (r *Repo) RemoveFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error {
	if len(fns) == 0 {
		return nil
	}
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = string(f)
	}
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.Builder.Delete(functionsTable).
		Where(sq.Eq{"user_id": id, "function": names}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

// Find returns one page of users matching the filter.
func (r *Repo) Find(ctx context.Context, f domain.UserFilter, page domain.PageRequest) (domain.Page[domain.User], error) {
	rows, err := postgres.FindPage[userRow](ctx, postgres.QuerierFromCtx(ctx, r.db), postgres.PageQuery{
		From:        table + " u",
		Columns:     columns,
		Where:       Spec(f),
		SortColumns: sortColumns,
		IDColumn:    "u.id",
	}, page)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return domain.MapPage(rows, userRow.toDomain), nil
}

type userRow struct {
	ID          uuid.UUID        `db:"id"`
	CompanyID   uuid.UUID        `db:"company_id"`
	FirstName   string           `db:"first_name"`
	MiddleName  *string          `db:"middle_name"`
	LastName    string           `db:"last_name"`
	Username    string           `db:"username"`
	Email       string           `db:"email"`
	SSN         string           `db:"ssn"`
	DateOfBirth time.Time        `db:"date_of_birth"`
	Addresses   []domain.Address `db:"addresses"`
	Phones      []domain.Phone   `db:"phones"`
	Status      string           `db:"status"`
	Functions   []string         `db:"functions"`
	CreatedBy   string           `db:"created_by"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedBy   string           `db:"updated_by"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	fns := make([]domain.UserFunction, len(row.Functions))
	for i, f := range row.Functions {
		fns[i] = domain.UserFunction(f)
	}
	return domain.User{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		FirstName:   row.FirstName,
		MiddleName:  row.MiddleName,
		LastName:    row.LastName,
		Username:    row.Username,
		Email:       row.Email,
		SSN:         row.SSN,
		DateOfBirth: row.DateOfBirth,
		Addresses:   nonNil(row.Addresses),
		Phones:      nonNil(row.Phones),
		Status:      domain.UserStatus(row.Status),
		Functions:   fns,
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
