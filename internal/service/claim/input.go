package claim

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// CreateInput holds the parameters for filing a claim. Status is accepted for
// compatibility with callers that send one and is ignored: new claims are
// always PENDING.
type CreateInput struct {
	ClaimNumber  string
	Status       domain.ClaimStatus
	ServiceDate  time.Time
	ConsumerID   uuid.UUID
	EnrollmentID uuid.UUID
	Amount       decimal.Decimal
	Notes        *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if len(strings.TrimSpace(i.ClaimNumber)) > 64 {
		errs = append(errs, domain.FieldError{Field: "claim_number", Message: "max 64 characters"})
	}
	if i.ServiceDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "service_date", Message: "required"})
	}
	if i.ConsumerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "consumer_id", Message: "required"})
	}
	if i.EnrollmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "enrollment_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds the parameters for approving a claim.
type ApproveInput struct {
	ClaimID        uuid.UUID
	ApprovedAmount decimal.Decimal
	Notes          *string
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	var errs []domain.FieldError

	if i.ClaimID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "claim_id", Message: "required"})
	}
	if !i.ApprovedAmount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "approved_amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DenyInput holds the parameters for denying a claim.
type DenyInput struct {
	ClaimID uuid.UUID
	Reason  string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i DenyInput) Validate() error {
	var errs []domain.FieldError

	if i.ClaimID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "claim_id", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
