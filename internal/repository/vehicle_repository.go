package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"backoffice-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `id, customer_id, license_plate, chassis_number, make, model, year,
	engine_size_cc, color, market_value, province, dlt_verified, dlt_verified_at,
	is_active, created_at, updated_at`

// GetByID retrieves a vehicle by its ID
func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1 AND is_active = TRUE`, vehicleColumns)

	err := r.db.GetContext(ctx, &vehicle, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle by id: %w", err)
	}

	return &vehicle, nil
}

// GetByCustomerID retrieves all active vehicles owned by a customer
func (r *VehicleRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE customer_id = $1 AND is_active = TRUE ORDER BY created_at DESC`, vehicleColumns)

	err := r.db.SelectContext(ctx, &vehicles, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles by customer id: %w", err)
	}

	return vehicles, nil
}

// Create inserts a new vehicle
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	query := `
		INSERT INTO vehicles (
			id, customer_id, license_plate, chassis_number, make, model, year,
			engine_size_cc, color, market_value, province, dlt_verified, dlt_verified_at,
			is_active, created_at, updated_at
		) VALUES (
			:id, :customer_id, :license_plate, :chassis_number, :make, :model, :year,
			:engine_size_cc, :color, :market_value, :province, :dlt_verified, :dlt_verified_at,
			:is_active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// Update persists mutable vehicle fields
func (r *VehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.UpdatedAt = time.Now()

	query := `
		UPDATE vehicles SET
			market_value = :market_value,
			color = :color,
			province = :province,
			dlt_verified = :dlt_verified,
			dlt_verified_at = :dlt_verified_at,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, vehicle)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}

// Deactivate soft-deletes a vehicle
func (r *VehicleRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE vehicles SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}
