package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID           uuid.UUID `json:"id" db:"id"`
	NationalID   string    `json:"national_id" db:"national_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Address      *string   `json:"address,omitempty" db:"address"`
	DateOfBirth  *int64    `json:"date_of_birth,omitempty" db:"date_of_birth"`
	KYCVerified  bool      `json:"kyc_verified" db:"kyc_verified"`
	NoClaimYears int       `json:"no_claim_years" db:"no_claim_years"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
