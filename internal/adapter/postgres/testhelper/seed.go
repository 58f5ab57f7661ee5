package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Plan type ids seeded by the migrations.
var (
	PlanTypeMedical = uuid.MustParse("7f1c7a52-0d1e-4c1b-9a1e-000000000001")
	PlanTypeDental  = uuid.MustParse("7f1c7a52-0d1e-4c1b-9a1e-000000000002")
	PlanTypeVision  = uuid.MustParse("7f1c7a52-0d1e-4c1b-9a1e-000000000003")
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCompany inserts an ACTIVE company.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()

	ts := now()
	c := domain.Company{
		ID:          uuid.New(),
		Name:        "Acme " + uniqueSuffix(),
		CountryCode: "USA",
		Status:      domain.CompanyStatusActive,
		CreatedBy:   "seed",
		CreatedAt:   ts,
		UpdatedBy:   "seed",
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, country_code, status, created_by, created_at, updated_by, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.CountryCode, string(c.Status), c.CreatedBy, c.CreatedAt, c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// SeedUser inserts an ACTIVE user in the company holding the given functions.
func SeedUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, functions ...domain.UserFunction) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:          uuid.New(),
		CompanyID:   companyID,
		FirstName:   "Test",
		LastName:    "User " + suffix,
		Username:    "user-" + suffix,
		Email:       "user-" + suffix + "@example.com",
		SSN:         "ssn-" + suffix,
		DateOfBirth: time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
		Status:      domain.UserStatusActive,
		Functions:   functions,
		CreatedBy:   "seed",
		CreatedAt:   ts,
		UpdatedBy:   "seed",
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, company_id, first_name, last_name, username, email, ssn, date_of_birth,
		                    status, created_by, created_at, updated_by, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.CompanyID, u.FirstName, u.LastName, u.Username, u.Email, u.SSN, u.DateOfBirth,
		string(u.Status), u.CreatedBy, u.CreatedAt, u.UpdatedBy, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	for _, f := range functions {
		if _, err := pool.Exec(ctx,
			`INSERT INTO user_functions (user_id, function) VALUES ($1, $2)`, u.ID, string(f),
		); err != nil {
			t.Fatalf("testhelper: SeedUser insert function: %v", err)
		}
	}
	return u
}

// SeedPackage inserts a package with the given window. Status is derived from today.
func SeedPackage(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, start, end *time.Time) domain.InsurancePackage {
	t.Helper()

	ts := now()
	p := domain.InsurancePackage{
		ID:               uuid.New(),
		CompanyID:        companyID,
		Name:             "Package " + uniqueSuffix(),
		StartDate:        start,
		EndDate:          end,
		PayrollFrequency: domain.PayrollFrequencyMonthly,
		Status:           domain.DerivePackageStatus(ts, start, end),
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO insurance_packages (id, company_id, name, start_date, end_date, payroll_frequency, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.CompanyID, p.Name, p.StartDate, p.EndDate, string(p.PayrollFrequency), string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPackage: %v", err)
	}
	return p
}

// SetPackageStatus overwrites a stored package status without touching the window.
func SetPackageStatus(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, status domain.PackageStatus) {
	t.Helper()
	if _, err := pool.Exec(context.Background(),
		`UPDATE insurance_packages SET status = $2 WHERE id = $1`, id, string(status),
	); err != nil {
		t.Fatalf("testhelper: SetPackageStatus: %v", err)
	}
}

// SeedPlan inserts a plan of the given type into the package.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, packageID, typeID uuid.UUID, name string, contribution decimal.Decimal) domain.Plan {
	t.Helper()

	ts := now()
	p := domain.Plan{
		ID:                 uuid.New(),
		InsurancePackageID: packageID,
		Name:               name,
		Type:               domain.PlanType{ID: typeID},
		Contribution:       contribution,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO plans (id, insurance_package_id, name, type_id, contribution, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.InsurancePackageID, p.Name, p.Type.ID, p.Contribution, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan: %v", err)
	}
	return p
}

// SeedEnrollment inserts a live enrollment.
func SeedEnrollment(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, plan domain.Plan) domain.Enrollment {
	t.Helper()

	e := domain.Enrollment{
		ID:               uuid.New(),
		UserID:           userID,
		PlanID:           plan.ID,
		ElectionAmount:   decimal.NewFromInt(1000),
		PlanContribution: plan.Contribution,
		CreatedAt:        now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO enrollments (id, user_id, plan_id, election_amount, plan_contribution, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.PlanID, e.ElectionAmount, e.PlanContribution, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEnrollment: %v", err)
	}
	return e
}

// SeedClaim inserts a PENDING claim.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, consumerID, enrollmentID uuid.UUID, amount decimal.Decimal, serviceDate time.Time) domain.Claim {
	t.Helper()

	ts := now()
	id := uuid.New()
	c := domain.Claim{
		ID:           id,
		ClaimNumber:  id.String(),
		Status:       domain.ClaimStatusPending,
		ServiceDate:  serviceDate,
		ConsumerID:   consumerID,
		EnrollmentID: enrollmentID,
		Amount:       amount,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO claims (id, claim_number, status, service_date, consumer_id, enrollment_id, amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.ClaimNumber, string(c.Status), c.ServiceDate, c.ConsumerID, c.EnrollmentID, c.Amount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}
	return c
}
