package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Claim is a reimbursement request filed by a consumer against an enrollment.
type Claim struct {
	ID             uuid.UUID
	ClaimNumber    string
	Status         ClaimStatus
	ServiceDate    time.Time
	ConsumerID     uuid.UUID
	EnrollmentID   uuid.UUID
	Amount         decimal.Decimal
	ApprovedAmount *decimal.Decimal
	DeniedReason   *string
	Notes          *string
	ProcessedDate  *time.Time
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClaimDecision is the outcome applied to a pending claim.
type ClaimDecision struct {
	Status         ClaimStatus
	ApprovedAmount *decimal.Decimal
	DeniedReason   *string
	Notes          *string
	ProcessedDate  time.Time
}
