package company

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// CreateInput holds the parameters for creating a company.
type CreateInput struct {
	Name        string
	CountryCode string
	Addresses   []domain.Address
	Phones      []domain.Phone
	Email       *string
	Website     *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if !domain.IsCountryCode(domain.NormalizeCountryCode(i.CountryCode)) {
		errs = append(errs, domain.FieldError{Field: "country_code", Message: "must be 3 letters"})
	}
	if i.Email != nil && strings.TrimSpace(*i.Email) != "" && !domain.IsEmail(strings.TrimSpace(*i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	errs = append(errs, domain.ValidateContacts(i.Addresses, i.Phones)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial company update. Nil fields are left unchanged;
// non-nil Addresses and Phones replace the stored lists.
type UpdateInput struct {
	CompanyID   uuid.UUID
	Name        *string
	CountryCode *string
	Addresses   *[]domain.Address
	Phones      *[]domain.Phone
	Email       *string
	Website     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
		if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.CountryCode != nil && !domain.IsCountryCode(domain.NormalizeCountryCode(*i.CountryCode)) {
		errs = append(errs, domain.FieldError{Field: "country_code", Message: "must be 3 letters"})
	}
	if i.Email != nil && !domain.IsEmail(strings.TrimSpace(*i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	var addresses []domain.Address
	var phones []domain.Phone
	if i.Addresses != nil {
		addresses = *i.Addresses
	}
	if i.Phones != nil {
		phones = *i.Phones
	}
	errs = append(errs, domain.ValidateContacts(addresses, phones)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReactivateInput selects which users are reactivated with the company.
// SelectedUserIDs is required when Option is SELECTED.
type ReactivateInput struct {
	CompanyID       uuid.UUID
	Option          domain.UserReactivationOption
	SelectedUserIDs []uuid.UUID
}

// Validate checks all fields and collects all errors. A SELECTED option
// without ids is not a field error; Reactivate reports it as a conflict.
func (i ReactivateInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if !i.Option.IsValid() {
		errs = append(errs, domain.FieldError{Field: "user_reactivation_option", Message: "must be ALL, SELECTED or NONE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
