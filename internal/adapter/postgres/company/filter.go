package company

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/insurance-admin/internal/adapter/postgres/predicate"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var sortColumns = map[string]string{
	"id":          "c.id",
	"name":        "c.name",
	"countryCode": "c.country_code",
	"status":      "c.status",
	"createdAt":   "c.created_at",
	"updatedAt":   "c.updated_at",
}

// Spec translates a company filter into a predicate over "companies c".
// Country codes are stored upper-case, so the input is upper-cased before matching.
func Spec(f domain.CompanyFilter) sq.Sqlizer {
	var country *string
	if f.CountryCode != nil {
		upper := strings.ToUpper(*f.CountryCode)
		country = &upper
	}

	return predicate.And(
		predicate.Like(f.Name, "c.name"),
		predicate.EqualText(country, "c.country_code"),
		predicate.Equal(f.Status, "c.status"),
		predicate.RangeFrom(f.CreatedFrom, "c.created_at"),
		predicate.RangeTo(f.CreatedTo, "c.created_at"),
		predicate.RangeFrom(f.UpdatedFrom, "c.updated_at"),
		predicate.RangeTo(f.UpdatedTo, "c.updated_at"),
	)
}
