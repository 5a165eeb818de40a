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

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, national_id, first_name, last_name, email, phone, address,
	date_of_birth, kyc_verified, no_claim_years, is_active, created_at, updated_at`

// GetByID retrieves a customer by its ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1 AND is_active = TRUE`, customerColumns)

	err := r.db.GetContext(ctx, &customer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}

	return &customer, nil
}

// GetByNationalID retrieves a customer by the Thai national id
func (r *CustomerRepository) GetByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	var customer models.Customer
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE national_id = $1 AND is_active = TRUE`, customerColumns)

	err := r.db.GetContext(ctx, &customer, query, nationalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by national id: %w", err)
	}

	return &customer, nil
}

// GetAll retrieves all active customers
func (r *CustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE is_active = TRUE ORDER BY created_at DESC`, customerColumns)

	err := r.db.SelectContext(ctx, &customers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

// Create inserts a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `
		INSERT INTO customers (
			id, national_id, first_name, last_name, email, phone, address,
			date_of_birth, kyc_verified, no_claim_years, is_active, created_at, updated_at
		) VALUES (
			:id, :national_id, :first_name, :last_name, :email, :phone, :address,
			:date_of_birth, :kyc_verified, :no_claim_years, :is_active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Update persists mutable customer fields
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()

	query := `
		UPDATE customers SET
			email = :email,
			phone = :phone,
			address = :address,
			kyc_verified = :kyc_verified,
			no_claim_years = :no_claim_years,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("customer not found")
	}

	return nil
}

// Deactivate soft-deletes a customer, records are never hard-deleted
func (r *CustomerRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE customers SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("customer not found")
	}

	return nil
}
