package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	PaymentReference  string        `json:"payment_reference" db:"payment_reference"`
	PolicyID          uuid.UUID     `json:"policy_id" db:"policy_id"`
	ClaimID           *uuid.UUID    `json:"claim_id,omitempty" db:"claim_id"`
	OriginalPaymentID *uuid.UUID    `json:"original_payment_id,omitempty" db:"original_payment_id"`
	Amount            float64       `json:"amount" db:"amount"`
	PaymentType       PaymentType   `json:"payment_type" db:"payment_type"`
	Method            PaymentMethod `json:"method" db:"method"`
	Status            PaymentStatus `json:"status" db:"status"`
	DueDate           *int64        `json:"due_date,omitempty" db:"due_date"`
	ProcessedAt       *int64        `json:"processed_at,omitempty" db:"processed_at"`
	CompletedAt       *int64        `json:"completed_at,omitempty" db:"completed_at"`
	FailedAt          *int64        `json:"failed_at,omitempty" db:"failed_at"`
	FailureReason     *string       `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// IsOverdue is a read-time computation, nothing in the database flips a
// payment to an overdue state.
func (p *Payment) IsOverdue(now int64) bool {
	if p.DueDate == nil {
		return false
	}
	if p.Status != PaymentPending && p.Status != PaymentFailed {
		return false
	}
	return *p.DueDate < now
}
