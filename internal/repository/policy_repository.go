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

type PolicyRepository struct {
	db *sqlx.DB
}

func NewPolicyRepository(db *sqlx.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const policyColumns = `id, policy_number, customer_id, vehicle_id, agent_id, policy_type,
	coverage_type, start_date, end_date, premium_amount, sum_insured, deductible, status,
	cancel_reason, cancelled_at, activated_at, renewed_from_id, source_quote_number,
	created_at, updated_at`

// GetByID retrieves a policy by its ID
func (r *PolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	query := fmt.Sprintf(`SELECT %s FROM policies WHERE id = $1`, policyColumns)

	err := r.db.GetContext(ctx, &policy, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("policy not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy by id: %w", err)
	}

	return &policy, nil
}

// GetByPolicyNumber retrieves a policy by its business number
func (r *PolicyRepository) GetByPolicyNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	var policy models.Policy
	query := fmt.Sprintf(`SELECT %s FROM policies WHERE policy_number = $1`, policyColumns)

	err := r.db.GetContext(ctx, &policy, query, policyNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("policy not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy by number: %w", err)
	}

	return &policy, nil
}

// buildPolicyFilterClause turns the typed filter map into SQL predicates.
// Evaluation order is fixed, so the argument positions are deterministic.
func buildPolicyFilterClause(filters map[string]interface{}) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	argCount := 1

	if customerID, ok := filters["customer_id"].(uuid.UUID); ok {
		clause += fmt.Sprintf(" AND customer_id = $%d", argCount)
		args = append(args, customerID)
		argCount++
	}

	if vehicleID, ok := filters["vehicle_id"].(uuid.UUID); ok {
		clause += fmt.Sprintf(" AND vehicle_id = $%d", argCount)
		args = append(args, vehicleID)
		argCount++
	}

	if status, ok := filters["status"].(models.PolicyStatus); ok {
		clause += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, status)
		argCount++
	}

	if policyType, ok := filters["policy_type"].(models.PolicyType); ok {
		clause += fmt.Sprintf(" AND policy_type = $%d", argCount)
		args = append(args, policyType)
		argCount++
	}

	return clause, args
}

// GetAll retrieves policies with optional filters
func (r *PolicyRepository) GetAll(ctx context.Context, filters map[string]interface{}) ([]models.Policy, error) {
	var policies []models.Policy
	query := fmt.Sprintf(`SELECT %s FROM policies WHERE 1=1`, policyColumns)

	clause, args := buildPolicyFilterClause(filters)
	query += clause
	query += " ORDER BY created_at DESC"

	err := r.db.SelectContext(ctx, &policies, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}

	return policies, nil
}

// Create inserts a new policy
func (r *PolicyRepository) Create(ctx context.Context, policy *models.Policy) error {
	if policy.ID == uuid.Nil {
		policy.ID = uuid.New()
	}
	now := time.Now()
	policy.CreatedAt = now
	policy.UpdatedAt = now

	query := `
		INSERT INTO policies (
			id, policy_number, customer_id, vehicle_id, agent_id, policy_type,
			coverage_type, start_date, end_date, premium_amount, sum_insured, deductible,
			status, cancel_reason, cancelled_at, activated_at, renewed_from_id,
			source_quote_number, created_at, updated_at
		) VALUES (
			:id, :policy_number, :customer_id, :vehicle_id, :agent_id, :policy_type,
			:coverage_type, :start_date, :end_date, :premium_amount, :sum_insured, :deductible,
			:status, :cancel_reason, :cancelled_at, :activated_at, :renewed_from_id,
			:source_quote_number, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, policy)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	return nil
}

// UpdateStatus persists a status transition as a single read-modify-write
func (r *PolicyRepository) UpdateStatus(ctx context.Context, policy *models.Policy) error {
	policy.UpdatedAt = time.Now()

	query := `
		UPDATE policies SET
			status = :status,
			cancel_reason = :cancel_reason,
			cancelled_at = :cancelled_at,
			activated_at = :activated_at,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, policy)
	if err != nil {
		return fmt.Errorf("failed to update policy status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("policy not found")
	}

	return nil
}

// CountByStatus returns the number of policies per status
func (r *PolicyRepository) CountByStatus(ctx context.Context, status models.PolicyStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM policies WHERE status = $1`

	err := r.db.GetContext(ctx, &count, query, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count policies: %w", err)
	}

	return count, nil
}
