package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CustomerID    uuid.UUID `json:"customer_id" db:"customer_id"`
	LicensePlate  string    `json:"license_plate" db:"license_plate"`
	ChassisNumber string    `json:"chassis_number" db:"chassis_number"`
	Make          string    `json:"make" db:"make"`
	Model         string    `json:"model" db:"model"`
	Year          int       `json:"year" db:"year"`
	EngineSizeCC  *int      `json:"engine_size_cc,omitempty" db:"engine_size_cc"`
	Color         *string   `json:"color,omitempty" db:"color"`
	MarketValue   float64   `json:"market_value" db:"market_value"`
	Province      *string   `json:"province,omitempty" db:"province"`
	DLTVerified   bool      `json:"dlt_verified" db:"dlt_verified"`
	DLTVerifiedAt *int64    `json:"dlt_verified_at,omitempty" db:"dlt_verified_at"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
