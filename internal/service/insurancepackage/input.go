package insurancepackage

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// CreateInput holds the parameters for creating an insurance package.
// Status is never accepted: it is derived from the dates.
type CreateInput struct {
	CompanyID        uuid.UUID
	Name             string
	StartDate        *time.Time
	EndDate          *time.Time
	PayrollFrequency domain.PayrollFrequency
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if domain.NormalizeName(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !i.PayrollFrequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payroll_frequency", Message: "unknown frequency"})
	}
	errs = append(errs, validateWindow(i.StartDate, i.EndDate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial package update. ClearStartDate and ClearEndDate
// remove a date, which deactivates the package.
type UpdateInput struct {
	PackageID        uuid.UUID
	Name             *string
	StartDate        *time.Time
	EndDate          *time.Time
	ClearStartDate   bool
	ClearEndDate     bool
	PayrollFrequency *domain.PayrollFrequency
}

// Validate checks the fields that can be checked without the stored package.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PackageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "package_id", Message: "required"})
	}
	if i.Name != nil && domain.NormalizeName(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.PayrollFrequency != nil && !i.PayrollFrequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payroll_frequency", Message: "unknown frequency"})
	}
	if i.ClearStartDate && i.StartDate != nil {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "cannot set and clear"})
	}
	if i.ClearEndDate && i.EndDate != nil {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "cannot set and clear"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateWindow(start, end *time.Time) []domain.FieldError {
	if start != nil && end != nil && domain.DateOf(*end).Before(domain.DateOf(*start)) {
		return []domain.FieldError{{Field: "end_date", Message: "must not be before start_date"}}
	}
	return nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}
