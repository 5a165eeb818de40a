package models

type PolicyType string

const (
	PolicyTypeCMI       PolicyType = "CMI"
	PolicyTypeVoluntary PolicyType = "VOLUNTARY"
)

type CoverageType string

const (
	CoverageThirdPartyOnly      CoverageType = "THIRD_PARTY_ONLY"
	CoverageThirdPartyFireTheft CoverageType = "THIRD_PARTY_FIRE_THEFT"
	CoverageComprehensive       CoverageType = "COMPREHENSIVE"
)

type PolicyStatus string

const (
	PolicyDraft     PolicyStatus = "DRAFT"
	PolicyQuoted    PolicyStatus = "QUOTED"
	PolicyActive    PolicyStatus = "ACTIVE"
	PolicyExpired   PolicyStatus = "EXPIRED"
	PolicyCancelled PolicyStatus = "CANCELLED"
	PolicySuspended PolicyStatus = "SUSPENDED"
)

// IsTerminal reports whether no further transition is allowed from the status.
func (s PolicyStatus) IsTerminal() bool {
	return s == PolicyExpired || s == PolicyCancelled
}

type ClaimStatus string

const (
	ClaimSubmitted          ClaimStatus = "SUBMITTED"
	ClaimUnderReview        ClaimStatus = "UNDER_REVIEW"
	ClaimUnderInvestigation ClaimStatus = "UNDER_INVESTIGATION"
	ClaimPendingDocuments   ClaimStatus = "PENDING_DOCUMENTS"
	ClaimApproved           ClaimStatus = "APPROVED"
	ClaimRejected           ClaimStatus = "REJECTED"
	ClaimSettled            ClaimStatus = "SETTLED"
	ClaimClosed             ClaimStatus = "CLOSED"
)

type ClaimPriority string

const (
	ClaimPriorityNormal ClaimPriority = "NORMAL"
	ClaimPriorityMedium ClaimPriority = "MEDIUM"
	ClaimPriorityHigh   ClaimPriority = "HIGH"
)

type IncidentType string

const (
	IncidentCollision       IncidentType = "COLLISION"
	IncidentTheft           IncidentType = "THEFT"
	IncidentFire            IncidentType = "FIRE"
	IncidentFlood           IncidentType = "FLOOD"
	IncidentVandalism       IncidentType = "VANDALISM"
	IncidentWindshieldGlass IncidentType = "WINDSHIELD_GLASS"
	IncidentOther           IncidentType = "OTHER"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type PaymentType string

const (
	PaymentTypePremium         PaymentType = "PREMIUM"
	PaymentTypeRefund          PaymentType = "REFUND"
	PaymentTypeClaimSettlement PaymentType = "CLAIM_SETTLEMENT"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodPromptPay    PaymentMethod = "PROMPTPAY"
	PaymentMethodCash         PaymentMethod = "CASH"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleAgent    UserRole = "AGENT"
	RoleAdjuster UserRole = "ADJUSTER"
)
