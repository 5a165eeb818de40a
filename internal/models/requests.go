package models

import "github.com/google/uuid"

// ============================================================================
// CUSTOMER / VEHICLE / USER REQUESTS
// ============================================================================

type RegisterCustomerRequest struct {
	NationalID   string  `json:"national_id" validate:"required,len=13,numeric"`
	FirstName    string  `json:"first_name" validate:"required,max=100"`
	LastName     string  `json:"last_name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required"`
	Address      *string `json:"address,omitempty"`
	DateOfBirth  *int64  `json:"date_of_birth,omitempty"`
	NoClaimYears int     `json:"no_claim_years" validate:"gte=0"`
}

type UpdateCustomerRequest struct {
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	NoClaimYears *int    `json:"no_claim_years,omitempty" validate:"omitempty,gte=0"`
}

type RegisterVehicleRequest struct {
	CustomerID    uuid.UUID `json:"customer_id" validate:"required"`
	LicensePlate  string    `json:"license_plate" validate:"required"`
	ChassisNumber string    `json:"chassis_number" validate:"required,len=17"`
	Make          string    `json:"make" validate:"required"`
	Model         string    `json:"model" validate:"required"`
	Year          int       `json:"year" validate:"required,gte=1950"`
	EngineSizeCC  *int      `json:"engine_size_cc,omitempty"`
	Color         *string   `json:"color,omitempty"`
	MarketValue   float64   `json:"market_value" validate:"required,gt=0"`
	Province      *string   `json:"province,omitempty"`
}

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,min=4,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	FullName string   `json:"full_name" validate:"required"`
	Role     UserRole `json:"role" validate:"required,oneof=ADMIN MANAGER AGENT ADJUSTER"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================================================================
// QUOTE / POLICY REQUESTS
// ============================================================================

type QuoteRequest struct {
	CustomerID   uuid.UUID    `json:"customer_id" validate:"required"`
	VehicleID    uuid.UUID    `json:"vehicle_id" validate:"required"`
	PolicyType   PolicyType   `json:"policy_type" validate:"required,oneof=CMI VOLUNTARY"`
	CoverageType CoverageType `json:"coverage_type" validate:"required"`
	StartDate    int64        `json:"start_date" validate:"required"`
	Years        int          `json:"years" validate:"required,gte=1"`
	SumInsured   *float64     `json:"sum_insured,omitempty" validate:"omitempty,gt=0"`
	Deductible   *float64     `json:"deductible,omitempty" validate:"omitempty,gte=0"`
	NoClaimYears *int         `json:"no_claim_years,omitempty" validate:"omitempty,gte=0"`
}

type CreatePolicyFromQuoteRequest struct {
	QuoteNumber string     `json:"quote_number" validate:"required"`
	AgentID     *uuid.UUID `json:"agent_id,omitempty"`
}

type CreateDraftPolicyRequest struct {
	CustomerID    uuid.UUID    `json:"customer_id" validate:"required"`
	VehicleID     uuid.UUID    `json:"vehicle_id" validate:"required"`
	AgentID       *uuid.UUID   `json:"agent_id,omitempty"`
	PolicyType    PolicyType   `json:"policy_type" validate:"required,oneof=CMI VOLUNTARY"`
	CoverageType  CoverageType `json:"coverage_type" validate:"required"`
	StartDate     int64        `json:"start_date" validate:"required"`
	EndDate       int64        `json:"end_date" validate:"required"`
	PremiumAmount float64      `json:"premium_amount" validate:"required,gt=0"`
	SumInsured    float64      `json:"sum_insured" validate:"gte=0"`
	Deductible    float64      `json:"deductible" validate:"gte=0"`
}

type CancelPolicyRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type RenewPolicyRequest struct {
	StartDate int64 `json:"start_date" validate:"required"`
	Years     int   `json:"years" validate:"required,gte=1"`
}

// ============================================================================
// CLAIM REQUESTS
// ============================================================================

type SubmitClaimRequest struct {
	PolicyID            uuid.UUID    `json:"policy_id" validate:"required"`
	IncidentDate        int64        `json:"incident_date" validate:"required"`
	IncidentLocation    string       `json:"incident_location" validate:"required,max=255"`
	IncidentDescription string       `json:"incident_description" validate:"required"`
	IncidentType        IncidentType `json:"incident_type" validate:"required"`
	HasInjuries         bool         `json:"has_injuries"`
	EstimatedDamage     float64      `json:"estimated_damage" validate:"gte=0"`
}

type ClaimTransitionRequest struct {
	Note *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type ApproveClaimRequest struct {
	ApprovedAmount float64 `json:"approved_amount" validate:"required,gt=0"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type RejectClaimRequest struct {
	Reason string  `json:"reason" validate:"required,max=500"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type SettleClaimRequest struct {
	SettlementAmount float64       `json:"settlement_amount" validate:"required,gt=0"`
	Method           PaymentMethod `json:"method" validate:"required"`
	Note             *string       `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type AssignAdjusterRequest struct {
	AdjusterID uuid.UUID `json:"adjuster_id" validate:"required"`
}

// ============================================================================
// PAYMENT REQUESTS
// ============================================================================

type CreatePaymentRequest struct {
	PolicyID uuid.UUID     `json:"policy_id" validate:"required"`
	Amount   float64       `json:"amount" validate:"required,gt=0"`
	Method   PaymentMethod `json:"method" validate:"required"`
	DueDate  *int64        `json:"due_date,omitempty"`
}

type FailPaymentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type RefundPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
