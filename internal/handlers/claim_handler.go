package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"backoffice-service/internal/models"
	"backoffice-service/internal/services"
	"backoffice-service/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimService    *services.ClaimService
	documentService *services.DocumentService
	auth            *AuthMiddleware
}

func NewClaimHandler(claimService *services.ClaimService, documentService *services.DocumentService, auth *AuthMiddleware) *ClaimHandler {
	return &ClaimHandler{
		claimService:    claimService,
		documentService: documentService,
		auth:            auth,
	}
}

func (h *ClaimHandler) Register(app *fiber.App) {
	gr := app.Group("backoffice/protected/api/v1/claims", h.auth.RequireAuth())
	gr.Post("/", h.SubmitClaim)
	gr.Get("/", h.ListClaims)
	gr.Get("/:id", h.GetClaim)
	gr.Post("/:id/assign", h.AssignAdjuster, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
	gr.Post("/:id/review", h.StartReview, h.auth.RequireRole(models.RoleAdjuster, models.RoleManager))
	gr.Post("/:id/investigate", h.StartInvestigation, h.auth.RequireRole(models.RoleAdjuster, models.RoleManager))
	gr.Post("/:id/request-documents", h.RequestDocuments, h.auth.RequireRole(models.RoleAdjuster, models.RoleManager))
	gr.Post("/:id/approve", h.ApproveClaim, h.auth.RequireRole(models.RoleManager))
	gr.Post("/:id/reject", h.RejectClaim, h.auth.RequireRole(models.RoleManager))
	gr.Post("/:id/settle", h.SettleClaim, h.auth.RequireRole(models.RoleManager))
	gr.Post("/:id/close", h.CloseClaim)
	gr.Post("/:id/documents", h.UploadDocument)
	gr.Get("/:id/documents", h.ListDocuments)
	gr.Get("/:id/documents/:docId", h.DownloadDocument)
}

func (h *ClaimHandler) SubmitClaim(c fiber.Ctx) error {
	var req models.SubmitClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	claim, err := h.claimService.SubmitClaim(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(claim))
}

// ListClaims supports optional status, priority and policy_id query filters.
func (h *ClaimHandler) ListClaims(c fiber.Ctx) error {
	filters := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filters["status"] = models.ClaimStatus(status)
	}
	if priority := c.Query("priority"); priority != "" {
		filters["priority"] = models.ClaimPriority(priority)
	}
	if policyID := c.Query("policy_id"); policyID != "" {
		id, err := uuid.Parse(policyID)
		if err != nil {
			return invalidIDResponse(c)
		}
		filters["policy_id"] = id
	}

	claims, err := h.claimService.ListClaims(c.Context(), filters)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claims))
}

func (h *ClaimHandler) GetClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	claim, err := h.claimService.GetClaim(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) AssignAdjuster(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.AssignAdjusterRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	claim, err := h.claimService.AssignAdjuster(c.Context(), id, req.AdjusterID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) StartReview(c fiber.Ctx) error {
	return h.simpleTransition(c, h.claimService.StartReview)
}

func (h *ClaimHandler) StartInvestigation(c fiber.Ctx) error {
	return h.simpleTransition(c, h.claimService.StartInvestigation)
}

func (h *ClaimHandler) RequestDocuments(c fiber.Ctx) error {
	return h.simpleTransition(c, h.claimService.RequestDocuments)
}

func (h *ClaimHandler) CloseClaim(c fiber.Ctx) error {
	return h.simpleTransition(c, h.claimService.CloseClaim)
}

func (h *ClaimHandler) ApproveClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.ApproveClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	var approverID *uuid.UUID
	if userID, ok := c.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(userID); err == nil {
			approverID = &parsed
		}
	}

	claim, err := h.claimService.ApproveClaim(c.Context(), id, &req, approverID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) RejectClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.RejectClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	claim, err := h.claimService.RejectClaim(c.Context(), id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) SettleClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.SettleClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	claim, err := h.claimService.SettleClaim(c.Context(), id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) UploadDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_REQUEST", "Missing file upload"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_REQUEST", "Unreadable file upload"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_REQUEST", "Unreadable file upload"))
	}

	var uploadedBy uuid.UUID
	if userID, ok := c.Locals("user_id").(string); ok {
		uploadedBy, _ = uuid.Parse(userID)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.documentService.UploadDocument(c.Context(), id, fileHeader.Filename, contentType, data, uploadedBy)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(doc))
}

func (h *ClaimHandler) ListDocuments(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	docs, err := h.documentService.ListDocuments(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(docs))
}

func (h *ClaimHandler) DownloadDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}
	docID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return invalidIDResponse(c)
	}

	doc, data, err := h.documentService.FetchDocument(c.Context(), id, docID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return c.Status(http.StatusOK).Send(data)
}

// simpleTransition handles the claim transitions that carry only an optional
// note.
func (h *ClaimHandler) simpleTransition(
	c fiber.Ctx,
	fn func(ctx context.Context, claimID uuid.UUID, note *string) (*models.Claim, error),
) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.ClaimTransitionRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			slog.Error("error parsing request", "error", err)
			return invalidBodyResponse(c)
		}
		if err := validate.Struct(&req); err != nil {
			return validationErrorResponse(c, err)
		}
	}

	claim, err := fn(c.Context(), id, req.Note)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claim))
}
