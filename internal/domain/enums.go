package domain

// CompanyStatus represents the activation state of a company.
type CompanyStatus string

const (
	CompanyStatusActive      CompanyStatus = "ACTIVE"
	CompanyStatusDeactivated CompanyStatus = "DEACTIVATED"
)

func (s CompanyStatus) String() string { return string(s) }

func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusActive, CompanyStatusDeactivated:
		return true
	}
	return false
}

// UserStatus represents the activation state of a user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusPending  UserStatus = "PENDING"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusPending:
		return true
	}
	return false
}

// UserFunction is a role a user performs inside their company.
type UserFunction string

const (
	UserFunctionAdmin           UserFunction = "ADMIN"
	UserFunctionManager         UserFunction = "MANAGER"
	UserFunctionConsumer        UserFunction = "CONSUMER"
	UserFunctionClaimsProcessor UserFunction = "CLAIMS_PROCESSOR"
)

func (f UserFunction) String() string { return string(f) }

func (f UserFunction) IsValid() bool {
	switch f {
	case UserFunctionAdmin, UserFunctionManager, UserFunctionConsumer, UserFunctionClaimsProcessor:
		return true
	}
	return false
}

// PayrollFrequency is how often contributions are deducted for a package.
type PayrollFrequency string

const (
	PayrollFrequencyWeekly   PayrollFrequency = "WEEKLY"
	PayrollFrequencyBiweekly PayrollFrequency = "BIWEEKLY"
	PayrollFrequencyMonthly  PayrollFrequency = "MONTHLY"
)

func (f PayrollFrequency) String() string { return string(f) }

func (f PayrollFrequency) IsValid() bool {
	switch f {
	case PayrollFrequencyWeekly, PayrollFrequencyBiweekly, PayrollFrequencyMonthly:
		return true
	}
	return false
}

// PackageStatus is the derived lifecycle state of an insurance package.
type PackageStatus string

const (
	PackageStatusInitialized PackageStatus = "INITIALIZED"
	PackageStatusActive      PackageStatus = "ACTIVE"
	PackageStatusExpired     PackageStatus = "EXPIRED"
	PackageStatusDeactivated PackageStatus = "DEACTIVATED"
)

func (s PackageStatus) String() string { return string(s) }

func (s PackageStatus) IsValid() bool {
	switch s {
	case PackageStatusInitialized, PackageStatusActive, PackageStatusExpired, PackageStatusDeactivated:
		return true
	}
	return false
}

// ClaimStatus is the processing state of a claim.
// HOLD exists in stored data but is never produced by claim transitions.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusDenied   ClaimStatus = "DENIED"
	ClaimStatusHold     ClaimStatus = "HOLD"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusDenied, ClaimStatusHold:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusDenied
}

// UserReactivationOption selects which users are reactivated with their company.
type UserReactivationOption string

const (
	UserReactivationAll      UserReactivationOption = "ALL"
	UserReactivationSelected UserReactivationOption = "SELECTED"
	UserReactivationNone     UserReactivationOption = "NONE"
)

func (o UserReactivationOption) String() string { return string(o) }

func (o UserReactivationOption) IsValid() bool {
	switch o {
	case UserReactivationAll, UserReactivationSelected, UserReactivationNone:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in revision history).
type EntityType string

const (
	EntityTypeCompany          EntityType = "COMPANY"
	EntityTypeUser             EntityType = "USER"
	EntityTypeInsurancePackage EntityType = "INSURANCE_PACKAGE"
	EntityTypePlan             EntityType = "PLAN"
	EntityTypeEnrollment       EntityType = "ENROLLMENT"
	EntityTypeClaim            EntityType = "CLAIM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCompany, EntityTypeUser, EntityTypeInsurancePackage,
		EntityTypePlan, EntityTypeEnrollment, EntityTypeClaim:
		return true
	}
	return false
}

// ChangeType represents the kind of mutation recorded in a revision.
type ChangeType string

const (
	ChangeTypeAdd    ChangeType = "ADD"
	ChangeTypeModify ChangeType = "MOD"
	ChangeTypeDelete ChangeType = "DEL"
)

func (c ChangeType) String() string { return string(c) }

func (c ChangeType) IsValid() bool {
	switch c {
	case ChangeTypeAdd, ChangeTypeModify, ChangeTypeDelete:
		return true
	}
	return false
}
