package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)
	ssnPattern      = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
)

// CreateInput holds the parameters for creating a user.
type CreateInput struct {
	CompanyID   uuid.UUID
	FirstName   string
	MiddleName  *string
	LastName    string
	Username    string
	Email       string
	SSN         string
	DateOfBirth time.Time
	Addresses   []domain.Address
	Phones      []domain.Phone
	Functions   []domain.UserFunction
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if domain.NormalizeName(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	}
	if domain.NormalizeName(i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	}
	if !usernamePattern.MatchString(strings.TrimSpace(i.Username)) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-64 letters, digits, dots, dashes or underscores"})
	}
	if !domain.IsEmail(strings.TrimSpace(i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if !ssnPattern.MatchString(strings.TrimSpace(i.SSN)) {
		errs = append(errs, domain.FieldError{Field: "ssn", Message: "must be 9 digits"})
	}
	errs = append(errs, validateBirthDate(i.DateOfBirth)...)
	errs = append(errs, validateFunctions(i.Functions)...)
	errs = append(errs, domain.ValidateContacts(i.Addresses, i.Phones)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial user update. A non-nil Functions replaces the
// held set; nil leaves functions unchanged.
type UpdateInput struct {
	UserID      uuid.UUID
	FirstName   *string
	MiddleName  *string
	LastName    *string
	Email       *string
	DateOfBirth *time.Time
	Addresses   *[]domain.Address
	Phones      *[]domain.Phone
	Functions   *[]domain.UserFunction
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.FirstName != nil && domain.NormalizeName(*i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "must not be empty"})
	}
	if i.LastName != nil && domain.NormalizeName(*i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "must not be empty"})
	}
	if i.Email != nil && !domain.IsEmail(strings.TrimSpace(*i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.DateOfBirth != nil {
		errs = append(errs, validateBirthDate(*i.DateOfBirth)...)
	}
	if i.Functions != nil {
		errs = append(errs, validateFunctions(*i.Functions)...)
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

func validateBirthDate(dob time.Time) []domain.FieldError {
	if dob.IsZero() {
		return []domain.FieldError{{Field: "date_of_birth", Message: "required"}}
	}
	if domain.DateOf(dob).After(domain.DateOf(time.Now())) {
		return []domain.FieldError{{Field: "date_of_birth", Message: "must not be in the future"}}
	}
	return nil
}

func validateFunctions(fns []domain.UserFunction) []domain.FieldError {
	for _, f := range fns {
		if !f.IsValid() {
			return []domain.FieldError{{Field: "functions", Message: "unknown function " + string(f)}}
		}
	}
	return nil
}

func normalizeSSN(ssn string) string {
	return strings.ReplaceAll(strings.TrimSpace(ssn), "-", "")
}
