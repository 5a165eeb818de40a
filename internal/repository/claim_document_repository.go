package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ClaimDocumentRepository struct {
	db *sqlx.DB
}

func NewClaimDocumentRepository(db *sqlx.DB) *ClaimDocumentRepository {
	return &ClaimDocumentRepository{db: db}
}

func (r *ClaimDocumentRepository) Create(ctx context.Context, doc *models.ClaimDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO claim_documents (
			id, claim_id, file_name, content_type, object_key, size_bytes, uploaded_by, created_at
		) VALUES (
			:id, :claim_id, :file_name, :content_type, :object_key, :size_bytes, :uploaded_by, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, doc)
	if err != nil {
		return fmt.Errorf("failed to create claim document: %w", err)
	}

	return nil
}

func (r *ClaimDocumentRepository) GetByClaimID(ctx context.Context, claimID uuid.UUID) ([]models.ClaimDocument, error) {
	var docs []models.ClaimDocument
	query := `
		SELECT id, claim_id, file_name, content_type, object_key, size_bytes, uploaded_by, created_at
		FROM claim_documents
		WHERE claim_id = $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &docs, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim documents: %w", err)
	}

	return docs, nil
}
