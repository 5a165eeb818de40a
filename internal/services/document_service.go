package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"backoffice-service/internal/database/minio"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/utils"

	"github.com/google/uuid"
)

const maxDocumentSizeBytes = 10 << 20 // 10 MiB

type DocumentService struct {
	documentRepo *repository.ClaimDocumentRepository
	claimRepo    *repository.ClaimRepository
	storage      *minio.MinioClient
}

func NewDocumentService(
	documentRepo *repository.ClaimDocumentRepository,
	claimRepo *repository.ClaimRepository,
	storage *minio.MinioClient,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		claimRepo:    claimRepo,
		storage:      storage,
	}
}

// UploadDocument stores a supporting document against a claim. Documents can
// be attached at any non-terminal stage of the claim; adjusters typically use
// this while the claim sits in PENDING_DOCUMENTS.
func (s *DocumentService) UploadDocument(
	ctx context.Context,
	claimID uuid.UUID,
	fileName, contentType string,
	data []byte,
	uploadedBy uuid.UUID,
) (*models.ClaimDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("invalid request: empty document")
	}
	if len(data) > maxDocumentSizeBytes {
		return nil, fmt.Errorf("invalid request: document exceeds %d bytes", maxDocumentSizeBytes)
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}
	if claim.Status == models.ClaimClosed || claim.Status == models.ClaimRejected {
		return nil, fmt.Errorf("state conflict: cannot attach documents to a %s claim", claim.Status)
	}

	if s.storage == nil {
		return nil, fmt.Errorf("document storage unavailable")
	}

	objectKey := fmt.Sprintf("claims/%s/%s%s",
		claim.ID, utils.GenerateRandomStringWithLength(12), filepath.Ext(fileName))

	if err := s.storage.PutDocument(ctx, objectKey, contentType, data); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.ClaimDocument{
		ClaimID:     claim.ID,
		FileName:    fileName,
		ContentType: contentType,
		ObjectKey:   objectKey,
		SizeBytes:   int64(len(data)),
	}
	if uploadedBy != uuid.Nil {
		uploader := uploadedBy.String()
		doc.UploadedBy = &uploader
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// best effort cleanup of the orphaned object
		if rmErr := s.storage.RemoveDocument(ctx, objectKey); rmErr != nil {
			slog.Error("Failed to remove orphaned document object", "object_key", objectKey, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	slog.Info("Claim document uploaded", "claim_number", claim.ClaimNumber, "file_name", fileName, "size_bytes", doc.SizeBytes)
	return doc, nil
}

// ListDocuments returns the document records attached to a claim.
func (s *DocumentService) ListDocuments(ctx context.Context, claimID uuid.UUID) ([]models.ClaimDocument, error) {
	if _, err := s.claimRepo.GetByID(ctx, claimID); err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}

	docs, err := s.documentRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim documents: %w", err)
	}
	return docs, nil
}

// FetchDocument returns a document record together with its stored content.
func (s *DocumentService) FetchDocument(ctx context.Context, claimID, documentID uuid.UUID) (*models.ClaimDocument, []byte, error) {
	docs, err := s.ListDocuments(ctx, claimID)
	if err != nil {
		return nil, nil, err
	}

	for i := range docs {
		if docs[i].ID == documentID {
			if s.storage == nil {
				return nil, nil, fmt.Errorf("document storage unavailable")
			}
			data, err := s.storage.GetDocument(ctx, docs[i].ObjectKey)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to fetch document: %w", err)
			}
			return &docs[i], data, nil
		}
	}

	return nil, nil, fmt.Errorf("document not found")
}
