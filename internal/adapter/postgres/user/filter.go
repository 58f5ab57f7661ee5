package user

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres/predicate"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var sortColumns = map[string]string{
	"id":          "u.id",
	"firstName":   "u.first_name",
	"lastName":    "u.last_name",
	"username":    "u.username",
	"email":       "u.email",
	"dateOfBirth": "u.date_of_birth",
	"status":      "u.status",
	"createdAt":   "u.created_at",
}

var (
	companyRel   = predicate.Relation{Table: "companies", Alias: "co", On: "co.id = u.company_id"}
	functionsRel = predicate.Relation{Table: "user_functions", Alias: "uf", On: "uf.user_id = u.id"}
)

// Spec translates a user filter into a predicate over "users u".
// Name matches first or last name; Functions matches users holding any of them.
func Spec(f domain.UserFilter) sq.Sqlizer {
	var functions []string
	for _, fn := range f.Functions {
		functions = append(functions, string(fn))
	}

	return predicate.And(
		predicate.JoinEqual(f.CompanyID, companyRel, "co.id"),
		predicate.Or(
			predicate.Like(f.Name, "u.first_name"),
			predicate.Like(f.Name, "u.last_name"),
		),
		predicate.Like(f.Email, "u.email"),
		predicate.Equal(f.DateOfBirth, "u.date_of_birth"),
		predicate.Equal(f.Status, "u.status"),
		predicate.EqualText(f.SSN, "u.ssn"),
		predicate.JoinIn(functions, functionsRel, "uf.function"),
	)
}
