package claim

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres/predicate"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var sortColumns = map[string]string{
	"id":            "c.id",
	"claimNumber":   "c.claim_number",
	"status":        "c.status",
	"serviceDate":   "c.service_date",
	"amount":        "c.amount",
	"processedDate": "c.processed_date",
	"createdAt":     "c.created_at",
}

var (
	planRel = predicate.Relation{Table: "enrollments", Alias: "ce", On: "ce.id = c.enrollment_id"}.
		Then(predicate.Relation{Table: "plans", Alias: "cp", On: "cp.id = ce.plan_id"})
	consumerRel = predicate.Relation{Table: "users", Alias: "cu", On: "cu.id = c.consumer_id"}
)

// Spec translates a claim filter into a predicate over "claims c".
// PlanName reaches the plan through the claim's enrollment; CompanyID matches
// the consumer's company. Amount and service date bounds are inclusive.
func Spec(f domain.ClaimFilter) sq.Sqlizer {
	return predicate.And(
		predicate.Equal(f.ClaimID, "c.id"),
		predicate.Equal(f.Status, "c.status"),
		predicate.JoinLike(f.PlanName, planRel, "cp.name"),
		predicate.RangeFrom(f.AmountMin, "c.amount"),
		predicate.RangeTo(f.AmountMax, "c.amount"),
		predicate.RangeFrom(f.ServiceDateFrom, "c.service_date"),
		predicate.RangeTo(f.ServiceDateTo, "c.service_date"),
		predicate.Equal(f.UserID, "c.consumer_id"),
		predicate.Equal(f.EnrollmentID, "c.enrollment_id"),
		predicate.JoinEqual(f.CompanyID, consumerRel, "cu.company_id"),
	)
}
