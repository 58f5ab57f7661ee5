package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// PageQuery describes a paged read over one table (plus to-one joins).
type PageQuery struct {
	// From is the table with its alias, e.g. "claims c".
	From string
	// Joins are to-one joins applied to both the count and the page query.
	Joins []string
	// Columns selected for the page query.
	Columns []string
	// Where is the composed predicate. nil matches everything.
	Where sq.Sqlizer
	// SortColumns maps public sort field names to SQL expressions.
	SortColumns map[string]string
	// IDColumn is appended as the final sort key so pages are stable.
	IDColumn string
}

// FindPage counts the rows matching q.Where, fetches the requested page and
// scans it into []T with pgxscan. T must carry db tags matching q.Columns.
func FindPage[T any](ctx context.Context, db Querier, q PageQuery, req domain.PageRequest) (domain.Page[T], error) {
	if err := req.Validate(); err != nil {
		return domain.Page[T]{}, err
	}

	orderBy, err := orderByClauses(q, req.Sort)
	if err != nil {
		return domain.Page[T]{}, err
	}

	where := q.Where
	if where == nil {
		where = sq.And{}
	}

	countQ := Builder.Select("COUNT(*)").From(q.From).Where(where)
	for _, j := range q.Joins {
		countQ = countQ.Join(j)
	}
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[T]{}, fmt.Errorf("count %s: %w", q.From, err)
	}

	page := domain.Page[T]{
		Content:       []T{},
		TotalElements: total,
		PageIndex:     req.PageIndex,
		PageSize:      req.PageSize,
	}
	if total == 0 || req.Offset() >= uint64(total) {
		return page, nil
	}

	selectQ := Builder.Select(q.Columns...).From(q.From).Where(where).
		OrderBy(orderBy...).
		Limit(uint64(req.PageSize)).
		Offset(req.Offset())
	for _, j := range q.Joins {
		selectQ = selectQ.Join(j)
	}
	selectSQL, selectArgs, err := selectQ.ToSql()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("build page query: %w", err)
	}

	if err := pgxscan.Select(ctx, db, &page.Content, selectSQL, selectArgs...); err != nil {
		return domain.Page[T]{}, fmt.Errorf("select %s: %w", q.From, err)
	}

	return page, nil
}

// orderByClauses resolves requested sort fields through the whitelist.
func orderByClauses(q PageQuery, sorts []domain.SortOrder) ([]string, error) {
	clauses := make([]string, 0, len(sorts)+1)
	sortedByID := false
	for _, s := range sorts {
		col, ok := q.SortColumns[s.Field]
		if !ok {
			return nil, domain.NewValidationError("sort", fmt.Sprintf("unsupported field %q", s.Field))
		}
		dir := s.Direction
		if dir == "" {
			dir = domain.SortAsc
		}
		clauses = append(clauses, col+" "+string(dir))
		if col == q.IDColumn {
			sortedByID = true
		}
	}
	if !sortedByID && q.IDColumn != "" {
		clauses = append(clauses, q.IDColumn+" ASC")
	}
	return clauses, nil
}
