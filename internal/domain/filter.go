package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filters are sparse: every nil field contributes no constraint.

// ClaimFilter selects claims.
type ClaimFilter struct {
	ClaimID         *uuid.UUID
	Status          *ClaimStatus
	PlanName        *string
	AmountMin       *decimal.Decimal
	AmountMax       *decimal.Decimal
	ServiceDateFrom *time.Time
	ServiceDateTo   *time.Time
	UserID          *uuid.UUID
	EnrollmentID    *uuid.UUID
	CompanyID       *uuid.UUID
}

// CompanyFilter selects companies.
type CompanyFilter struct {
	Name        *string
	CountryCode *string
	Status      *CompanyStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time
}

// UserFilter selects users. Name matches either first or last name.
type UserFilter struct {
	CompanyID   *uuid.UUID
	Name        *string
	Email       *string
	DateOfBirth *time.Time
	Status      *UserStatus
	SSN         *string
	Functions   []UserFunction
}

// PlanFilter selects plans.
type PlanFilter struct {
	TypeID             *uuid.UUID
	InsurancePackageID *uuid.UUID
}

// InsurancePackageFilter selects insurance packages. StartDate and EndDate
// bound the package window inclusively.
type InsurancePackageFilter struct {
	CompanyID        *uuid.UUID
	Name             *string
	StartDate        *time.Time
	EndDate          *time.Time
	PayrollFrequency *PayrollFrequency
	Status           *PackageStatus
}
