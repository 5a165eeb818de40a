package models

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	ID               uuid.UUID    `json:"id" db:"id"`
	PolicyNumber     string       `json:"policy_number" db:"policy_number"`
	CustomerID       uuid.UUID    `json:"customer_id" db:"customer_id"`
	VehicleID        uuid.UUID    `json:"vehicle_id" db:"vehicle_id"`
	AgentID          *uuid.UUID   `json:"agent_id,omitempty" db:"agent_id"`
	PolicyType       PolicyType   `json:"policy_type" db:"policy_type"`
	CoverageType     CoverageType `json:"coverage_type" db:"coverage_type"`
	StartDate        int64        `json:"start_date" db:"start_date"`
	EndDate          int64        `json:"end_date" db:"end_date"`
	PremiumAmount    float64      `json:"premium_amount" db:"premium_amount"`
	SumInsured       float64      `json:"sum_insured" db:"sum_insured"`
	Deductible       float64      `json:"deductible" db:"deductible"`
	Status           PolicyStatus `json:"status" db:"status"`
	CancelReason     *string      `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CancelledAt      *int64       `json:"cancelled_at,omitempty" db:"cancelled_at"`
	ActivatedAt      *int64       `json:"activated_at,omitempty" db:"activated_at"`
	RenewedFromID    *uuid.UUID   `json:"renewed_from_id,omitempty" db:"renewed_from_id"`
	SourceQuoteNum   *string      `json:"source_quote_number,omitempty" db:"source_quote_number"`
	CreatedAt        time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" db:"updated_at"`
}

// EffectiveStatus reports the status as of now: an ACTIVE policy whose
// coverage window has closed reads as EXPIRED even before the lazy
// write-back has happened.
func (p *Policy) EffectiveStatus(now int64) PolicyStatus {
	if p.Status == PolicyActive && p.EndDate < now {
		return PolicyExpired
	}
	return p.Status
}
