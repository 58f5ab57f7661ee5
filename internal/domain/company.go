package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address attached to a company or user.
type Address struct {
	Type        string `json:"type,omitempty"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Phone is a contact number attached to a company or user.
type Phone struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number"`
}

// Company is an employer that owns users and insurance packages.
type Company struct {
	ID          uuid.UUID
	Name        string
	CountryCode string // ISO 3166-1 alpha-3, stored upper-case
	Addresses   []Address
	Phones      []Phone
	Email       *string
	Website     *string
	Status      CompanyStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedBy   string
	UpdatedAt   time.Time
}

// IsActive reports whether the company accepts field updates.
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

// CompanyUpdateParams carries a partial company update. Nil fields are left untouched;
// non-nil Addresses/Phones replace the stored lists wholesale.
type CompanyUpdateParams struct {
	Name        *string
	CountryCode *string
	Addresses   *[]Address
	Phones      *[]Phone
	Email       *string
	Website     *string
}
