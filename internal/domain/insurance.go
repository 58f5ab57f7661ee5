package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsurancePackage groups the plans a company offers for one coverage window.
// Status is derived from the window and is never taken from client input.
type InsurancePackage struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	Name             string
	StartDate        *time.Time
	EndDate          *time.Time
	PayrollFrequency PayrollFrequency
	Status           PackageStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InsurancePackageUpdateParams carries a partial package update.
type InsurancePackageUpdateParams struct {
	Name             *string
	StartDate        *time.Time
	EndDate          *time.Time
	PayrollFrequency *PayrollFrequency
}

// PackageStatusRow is the minimal projection the status recalculation reads.
type PackageStatusRow struct {
	ID        uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Status    PackageStatus
}

// DerivePackageStatus computes a package status from its coverage window.
// Comparison is by calendar date in UTC, both ends inclusive.
func DerivePackageStatus(now time.Time, start, end *time.Time) PackageStatus {
	if start == nil || end == nil {
		return PackageStatusDeactivated
	}
	today := DateOf(now)
	switch {
	case today.Before(DateOf(*start)):
		return PackageStatusInitialized
	case today.After(DateOf(*end)):
		return PackageStatusExpired
	default:
		return PackageStatusActive
	}
}

// DateOf truncates t to midnight UTC of its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PlanType is a lookup value classifying plans (e.g. DENTAL, VISION).
type PlanType struct {
	ID   uuid.UUID
	Code string
	Name string
}

// Plan is a benefit offered inside an insurance package.
type Plan struct {
	ID                 uuid.UUID
	InsurancePackageID uuid.UUID
	Name               string
	Type               PlanType
	Contribution       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Enrollment binds a user to a plan. PlanContribution is a snapshot of the
// plan's contribution at creation time and is never refreshed.
type Enrollment struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	PlanID           uuid.UUID
	ElectionAmount   decimal.Decimal
	PlanContribution decimal.Decimal
	CreatedAt        time.Time
	DeletedAt        *time.Time
}

// IsLive reports whether the enrollment has not been soft-deleted.
func (e *Enrollment) IsLive() bool {
	return e.DeletedAt == nil
}
