package insurancepackage

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres/predicate"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var sortColumns = map[string]string{
	"id":        "ip.id",
	"name":      "ip.name",
	"startDate": "ip.start_date",
	"endDate":   "ip.end_date",
	"status":    "ip.status",
	"createdAt": "ip.created_at",
}

// Spec translates a package filter into a predicate over "insurance_packages ip".
// StartDate and EndDate select packages whose window lies inside [StartDate, EndDate].
func Spec(f domain.InsurancePackageFilter) sq.Sqlizer {
	return predicate.And(
		predicate.Equal(f.CompanyID, "ip.company_id"),
		predicate.Like(f.Name, "ip.name"),
		predicate.RangeFrom(f.StartDate, "ip.start_date"),
		predicate.RangeTo(f.EndDate, "ip.end_date"),
		predicate.Equal(f.PayrollFrequency, "ip.payroll_frequency"),
		predicate.Equal(f.Status, "ip.status"),
	)
}
