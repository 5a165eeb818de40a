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

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, payment_reference, policy_id, claim_id, original_payment_id,
	amount, payment_type, method, status, due_date, processed_at, completed_at,
	failed_at, failure_reason, created_at, updated_at`

// GetByID retrieves a payment by its ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)

	err := r.db.GetContext(ctx, &payment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by id: %w", err)
	}

	return &payment, nil
}

// GetByPolicyID retrieves all payments on a policy
func (r *PaymentRepository) GetByPolicyID(ctx context.Context, policyID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE policy_id = $1 ORDER BY created_at DESC`, paymentColumns)

	err := r.db.SelectContext(ctx, &payments, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments by policy id: %w", err)
	}

	return payments, nil
}

// GetOverdue retrieves payments whose due date has passed and that are still
// collectible. Overdue is never stored, only computed.
func (r *PaymentRepository) GetOverdue(ctx context.Context, now int64) ([]models.Payment, error) {
	var payments []models.Payment
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE due_date IS NOT NULL AND due_date < $1 AND status IN ('PENDING', 'FAILED')
		ORDER BY due_date ASC`, paymentColumns)

	err := r.db.SelectContext(ctx, &payments, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue payments: %w", err)
	}

	return payments, nil
}

// Create inserts a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query := `
		INSERT INTO payments (
			id, payment_reference, policy_id, claim_id, original_payment_id,
			amount, payment_type, method, status, due_date, processed_at,
			completed_at, failed_at, failure_reason, created_at, updated_at
		) VALUES (
			:id, :payment_reference, :policy_id, :claim_id, :original_payment_id,
			:amount, :payment_type, :method, :status, :due_date, :processed_at,
			:completed_at, :failed_at, :failure_reason, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// CreateTx inserts a payment inside an existing transaction
func (r *PaymentRepository) CreateTx(tx *sqlx.Tx, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	query := `
		INSERT INTO payments (
			id, payment_reference, policy_id, claim_id, original_payment_id,
			amount, payment_type, method, status, due_date, processed_at,
			completed_at, failed_at, failure_reason, created_at, updated_at
		) VALUES (
			:id, :payment_reference, :policy_id, :claim_id, :original_payment_id,
			:amount, :payment_type, :method, :status, :due_date, :processed_at,
			:completed_at, :failed_at, :failure_reason, :created_at, :updated_at
		)`

	_, err := tx.NamedExec(query, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment in transaction: %w", err)
	}

	return nil
}

// UpdateStatus persists a payment status transition
func (r *PaymentRepository) UpdateStatus(ctx context.Context, payment *models.Payment) error {
	payment.UpdatedAt = time.Now()

	query := `
		UPDATE payments SET
			status = :status,
			processed_at = :processed_at,
			completed_at = :completed_at,
			failed_at = :failed_at,
			failure_reason = :failure_reason,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("payment not found")
	}

	return nil
}

// UpdateStatusTx persists a payment status transition inside a transaction
func (r *PaymentRepository) UpdateStatusTx(tx *sqlx.Tx, payment *models.Payment) error {
	payment.UpdatedAt = time.Now()

	query := `
		UPDATE payments SET
			status = :status,
			processed_at = :processed_at,
			completed_at = :completed_at,
			failed_at = :failed_at,
			failure_reason = :failure_reason,
			updated_at = :updated_at
		WHERE id = :id`

	_, err := tx.NamedExec(query, payment)
	if err != nil {
		return fmt.Errorf("failed to update payment status in transaction: %w", err)
	}

	return nil
}

// Beginx starts a transaction for multi-row payment operations
func (r *PaymentRepository) Beginx() (*sqlx.Tx, error) {
	return r.db.Beginx()
}
