package plan

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres/predicate"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var sortColumns = map[string]string{
	"id":           "p.id",
	"name":         "p.name",
	"contribution": "p.contribution",
	"type":         "pt.code",
	"createdAt":    "p.created_at",
}

var typeRel = predicate.Relation{Table: "plan_types", Alias: "ptf", On: "ptf.id = p.type_id"}

// Spec translates a plan filter into a predicate over "plans p".
func Spec(f domain.PlanFilter) sq.Sqlizer {
	return predicate.And(
		predicate.JoinEqual(f.TypeID, typeRel, "ptf.id"),
		predicate.Equal(f.InsurancePackageID, "p.insurance_package_id"),
	)
}
