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

type ClaimRepository struct {
	db *sqlx.DB
}

func NewClaimRepository(db *sqlx.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

const claimColumns = `id, claim_number, policy_id, adjuster_id, incident_date,
	incident_location, incident_description, incident_type, has_injuries, estimated_damage,
	priority, status, approved_amount, settled_amount, paid_amount, reject_reason,
	approved_by, submitted_at, review_started_at, investigation_at, documents_requested_at,
	approved_at, rejected_at, settled_at, closed_at, notes, created_at, updated_at`

// GetByID retrieves a claim by its ID
func (r *ClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE id = $1`, claimColumns)

	err := r.db.GetContext(ctx, &claim, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("claim not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim by id: %w", err)
	}

	return &claim, nil
}

// buildClaimFilterClause turns the typed filter map into SQL predicates.
// Evaluation order is fixed, so the argument positions are deterministic.
func buildClaimFilterClause(filters map[string]interface{}) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	argCount := 1

	if policyID, ok := filters["policy_id"].(uuid.UUID); ok {
		clause += fmt.Sprintf(" AND policy_id = $%d", argCount)
		args = append(args, policyID)
		argCount++
	}

	if adjusterID, ok := filters["adjuster_id"].(uuid.UUID); ok {
		clause += fmt.Sprintf(" AND adjuster_id = $%d", argCount)
		args = append(args, adjusterID)
		argCount++
	}

	if status, ok := filters["status"].(models.ClaimStatus); ok {
		clause += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, status)
		argCount++
	}

	if priority, ok := filters["priority"].(models.ClaimPriority); ok {
		clause += fmt.Sprintf(" AND priority = $%d", argCount)
		args = append(args, priority)
		argCount++
	}

	return clause, args
}

// GetAll retrieves all claims with optional filters
func (r *ClaimRepository) GetAll(ctx context.Context, filters map[string]interface{}) ([]models.Claim, error) {
	var claims []models.Claim
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE 1=1`, claimColumns)

	clause, args := buildClaimFilterClause(filters)
	query += clause
	query += " ORDER BY created_at DESC"

	err := r.db.SelectContext(ctx, &claims, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}

	return claims, nil
}

// GetByPolicyID retrieves claims belonging to a policy
func (r *ClaimRepository) GetByPolicyID(ctx context.Context, policyID uuid.UUID) ([]models.Claim, error) {
	var claims []models.Claim
	query := fmt.Sprintf(`SELECT %s FROM claims WHERE policy_id = $1 ORDER BY created_at DESC`, claimColumns)

	err := r.db.SelectContext(ctx, &claims, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims by policy id: %w", err)
	}

	return claims, nil
}

// Create inserts a new claim
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	now := time.Now()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	query := `
		INSERT INTO claims (
			id, claim_number, policy_id, adjuster_id, incident_date,
			incident_location, incident_description, incident_type, has_injuries,
			estimated_damage, priority, status, approved_amount, settled_amount,
			paid_amount, reject_reason, approved_by, submitted_at, review_started_at,
			investigation_at, documents_requested_at, approved_at, rejected_at,
			settled_at, closed_at, notes, created_at, updated_at
		) VALUES (
			:id, :claim_number, :policy_id, :adjuster_id, :incident_date,
			:incident_location, :incident_description, :incident_type, :has_injuries,
			:estimated_damage, :priority, :status, :approved_amount, :settled_amount,
			:paid_amount, :reject_reason, :approved_by, :submitted_at, :review_started_at,
			:investigation_at, :documents_requested_at, :approved_at, :rejected_at,
			:settled_at, :closed_at, :notes, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}

	return nil
}

// Update persists the current claim state
func (r *ClaimRepository) Update(ctx context.Context, claim *models.Claim) error {
	claim.UpdatedAt = time.Now()

	query := `
		UPDATE claims SET
			adjuster_id = :adjuster_id,
			priority = :priority,
			status = :status,
			approved_amount = :approved_amount,
			settled_amount = :settled_amount,
			paid_amount = :paid_amount,
			reject_reason = :reject_reason,
			approved_by = :approved_by,
			review_started_at = :review_started_at,
			investigation_at = :investigation_at,
			documents_requested_at = :documents_requested_at,
			approved_at = :approved_at,
			rejected_at = :rejected_at,
			settled_at = :settled_at,
			closed_at = :closed_at,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("claim not found")
	}

	return nil
}

// UpdateTx persists the claim inside an existing transaction
func (r *ClaimRepository) UpdateTx(tx *sqlx.Tx, claim *models.Claim) error {
	claim.UpdatedAt = time.Now()

	query := `
		UPDATE claims SET
			status = :status,
			settled_amount = :settled_amount,
			paid_amount = :paid_amount,
			settled_at = :settled_at,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id`

	_, err := tx.NamedExec(query, claim)
	if err != nil {
		return fmt.Errorf("failed to update claim in transaction: %w", err)
	}

	return nil
}

// Beginx starts a transaction for multi-row claim operations
func (r *ClaimRepository) Beginx() (*sqlx.Tx, error) {
	return r.db.Beginx()
}
