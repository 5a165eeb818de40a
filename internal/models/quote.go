package models

import (
	"github.com/google/uuid"
)

// Quote is an immutable premium quotation. Quotes live in Redis for the
// length of their validity window and are never updated after issue.
type Quote struct {
	QuoteNumber       string       `json:"quote_number"`
	CustomerID        uuid.UUID    `json:"customer_id"`
	VehicleID         uuid.UUID    `json:"vehicle_id"`
	PolicyType        PolicyType   `json:"policy_type"`
	CoverageType      CoverageType `json:"coverage_type"`
	StartDate         int64        `json:"start_date"`
	Years             int          `json:"years"`
	SumInsured        float64      `json:"sum_insured"`
	Deductible        float64      `json:"deductible"`
	BasePremium       float64      `json:"base_premium"`
	MultiYearDiscount float64      `json:"multi_year_discount"`
	NoClaimDiscount   float64      `json:"no_claim_discount"`
	NetPremium        float64      `json:"net_premium"`
	VATAmount         float64      `json:"vat_amount"`
	StampDuty         float64      `json:"stamp_duty"`
	TotalPremium      float64      `json:"total_premium"`
	IssuedAt          int64        `json:"issued_at"`
	ValidUntil        int64        `json:"valid_until"`
}
