package models

import (
	"time"

	"github.com/google/uuid"
)

type Claim struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	ClaimNumber         string        `json:"claim_number" db:"claim_number"`
	PolicyID            uuid.UUID     `json:"policy_id" db:"policy_id"`
	AdjusterID          *uuid.UUID    `json:"adjuster_id,omitempty" db:"adjuster_id"`
	IncidentDate        int64         `json:"incident_date" db:"incident_date"`
	IncidentLocation    string        `json:"incident_location" db:"incident_location"`
	IncidentDescription string        `json:"incident_description" db:"incident_description"`
	IncidentType        IncidentType  `json:"incident_type" db:"incident_type"`
	HasInjuries         bool          `json:"has_injuries" db:"has_injuries"`
	EstimatedDamage     float64       `json:"estimated_damage" db:"estimated_damage"`
	Priority            ClaimPriority `json:"priority" db:"priority"`
	Status              ClaimStatus   `json:"status" db:"status"`
	ApprovedAmount      *float64      `json:"approved_amount,omitempty" db:"approved_amount"`
	SettledAmount       *float64      `json:"settled_amount,omitempty" db:"settled_amount"`
	PaidAmount          *float64      `json:"paid_amount,omitempty" db:"paid_amount"`
	RejectReason        *string       `json:"reject_reason,omitempty" db:"reject_reason"`
	ApprovedBy          *uuid.UUID    `json:"approved_by,omitempty" db:"approved_by"`
	SubmittedAt         int64         `json:"submitted_at" db:"submitted_at"`
	ReviewStartedAt     *int64        `json:"review_started_at,omitempty" db:"review_started_at"`
	InvestigationAt     *int64        `json:"investigation_at,omitempty" db:"investigation_at"`
	DocumentsRequested  *int64        `json:"documents_requested_at,omitempty" db:"documents_requested_at"`
	ApprovedAt          *int64        `json:"approved_at,omitempty" db:"approved_at"`
	RejectedAt          *int64        `json:"rejected_at,omitempty" db:"rejected_at"`
	SettledAt           *int64        `json:"settled_at,omitempty" db:"settled_at"`
	ClosedAt            *int64        `json:"closed_at,omitempty" db:"closed_at"`
	Notes               string        `json:"notes" db:"notes"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

type ClaimDocument struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ClaimID     uuid.UUID `json:"claim_id" db:"claim_id"`
	FileName    string    `json:"file_name" db:"file_name"`
	ContentType string    `json:"content_type" db:"content_type"`
	ObjectKey   string    `json:"object_key" db:"object_key"`
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`
	UploadedBy  *string   `json:"uploaded_by,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
