// Package predicate composes optional filter criteria into squirrel
// conditions. Every constructor returns nil when its input is absent, and
// And drops nil conditions, so a filter struct with only some fields set
// produces exactly the conjunction of the present criteria.
package predicate

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Equal matches column = value.
func Equal[T any](value *T, column string) sq.Sqlizer {
	if value == nil {
		return nil
	}
	return sq.Expr(column+" = ?", *value)
}

// EqualText matches column = text with surrounding space trimmed.
// Blank text is absent.
func EqualText(text *string, column string) sq.Sqlizer {
	if text == nil {
		return nil
	}
	t := strings.TrimSpace(*text)
	if t == "" {
		return nil
	}
	return sq.Expr(column+" = ?", t)
}

// Like matches rows whose column contains text, case-insensitively.
// LIKE wildcards in text are matched literally. Blank text is absent.
func Like(text *string, column string) sq.Sqlizer {
	if text == nil {
		return nil
	}
	t := strings.TrimSpace(*text)
	if t == "" {
		return nil
	}
	return sq.Expr("LOWER("+column+") LIKE ?", "%"+likeEscaper.Replace(strings.ToLower(t))+"%")
}

// RangeFrom matches column >= value.
func RangeFrom[T any](value *T, column string) sq.Sqlizer {
	if value == nil {
		return nil
	}
	return sq.Expr(column+" >= ?", *value)
}

// RangeTo matches column <= value.
func RangeTo[T any](value *T, column string) sq.Sqlizer {
	if value == nil {
		return nil
	}
	return sq.Expr(column+" <= ?", *value)
}

// Relation is a hop from the filtered table to a related table. On is the
// join condition and may reference the alias of the previous hop.
type Relation struct {
	Table string
	Alias string
	On    string

	next *Relation
}

// Then extends the relation with a further hop joined onto the last one.
func (r Relation) Then(next Relation) Relation {
	out := r
	if r.next == nil {
		n := next
		out.next = &n
		return out
	}
	n := r.next.Then(next)
	out.next = &n
	return out
}

// Exists matches rows for which some related row satisfies inner.
func (r Relation) Exists(inner sq.Sqlizer) sq.Sqlizer {
	if inner == nil {
		return nil
	}
	sub := sq.Select("1").From(r.Table + " " + r.Alias)
	for n := r.next; n != nil; n = n.next {
		sub = sub.Join(n.Table + " " + n.Alias + " ON " + n.On)
	}
	sub = sub.Where(r.On).Where(inner)
	return sq.Expr("EXISTS (?)", sub)
}

// JoinEqual matches rows related to a row whose column equals value.
func JoinEqual[T any](value *T, rel Relation, column string) sq.Sqlizer {
	return rel.Exists(Equal(value, column))
}

// JoinLike matches rows related to a row whose column contains text.
func JoinLike(text *string, rel Relation, column string) sq.Sqlizer {
	return rel.Exists(Like(text, column))
}

// JoinIn matches rows related to a row whose column is one of values.
// An empty list is absent.
func JoinIn[T any](values []T, rel Relation, column string) sq.Sqlizer {
	if len(values) == 0 {
		return nil
	}
	return rel.Exists(sq.Eq{column: values})
}

// Or matches when any present condition matches. All-absent is absent.
func Or(preds ...sq.Sqlizer) sq.Sqlizer {
	present := compact(preds)
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	}
	return sq.Or(present)
}

// And conjoins the present conditions. With none present it matches every row.
func And(preds ...sq.Sqlizer) sq.Sqlizer {
	present := compact(preds)
	if len(present) == 0 {
		return sq.And{}
	}
	return sq.And(present)
}

func compact(preds []sq.Sqlizer) []sq.Sqlizer {
	out := make([]sq.Sqlizer, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
