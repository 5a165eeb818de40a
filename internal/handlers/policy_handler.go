package handlers

import (
	"log/slog"
	"net/http"

	"backoffice-service/internal/models"
	"backoffice-service/internal/services"
	"backoffice-service/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PolicyHandler struct {
	policyService *services.PolicyService
	quoteService  *services.QuoteService
	auth          *AuthMiddleware
}

func NewPolicyHandler(policyService *services.PolicyService, quoteService *services.QuoteService, auth *AuthMiddleware) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
		quoteService:  quoteService,
		auth:          auth,
	}
}

func (h *PolicyHandler) Register(app *fiber.App) {
	quoteGr := app.Group("backoffice/protected/api/v1/quotes", h.auth.RequireAuth())
	quoteGr.Post("/", h.IssueQuote)
	quoteGr.Get("/:quoteNumber", h.GetQuote)

	policyGr := app.Group("backoffice/protected/api/v1/policies", h.auth.RequireAuth())
	policyGr.Post("/", h.CreateDraftPolicy)
	policyGr.Post("/from-quote", h.CreatePolicyFromQuote)
	policyGr.Get("/", h.ListPolicies)
	policyGr.Get("/by-number/:policyNumber", h.GetPolicyByNumber)
	policyGr.Get("/:id", h.GetPolicy)
	policyGr.Post("/:id/quote", h.MarkQuoted)
	policyGr.Post("/:id/activate", h.ActivatePolicy)
	policyGr.Post("/:id/suspend", h.SuspendPolicy, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
	policyGr.Post("/:id/cancel", h.CancelPolicy, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
	policyGr.Post("/:id/renew", h.RenewPolicy)
}

func (h *PolicyHandler) IssueQuote(c fiber.Ctx) error {
	var req models.QuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	quote, err := h.quoteService.IssueQuote(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(quote))
}

func (h *PolicyHandler) GetQuote(c fiber.Ctx) error {
	quote, err := h.quoteService.GetQuote(c.Context(), c.Params("quoteNumber"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quote))
}

func (h *PolicyHandler) CreateDraftPolicy(c fiber.Ctx) error {
	var req models.CreateDraftPolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	policy, err := h.policyService.CreateDraftPolicy(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) CreatePolicyFromQuote(c fiber.Ctx) error {
	var req models.CreatePolicyFromQuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	policy, err := h.policyService.CreatePolicyFromQuote(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(policy))
}

// ListPolicies supports optional status, customer_id and policy_type query
// filters.
func (h *PolicyHandler) ListPolicies(c fiber.Ctx) error {
	filters := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filters["status"] = models.PolicyStatus(status)
	}
	if policyType := c.Query("policy_type"); policyType != "" {
		filters["policy_type"] = models.PolicyType(policyType)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return invalidIDResponse(c)
		}
		filters["customer_id"] = id
	}

	policies, err := h.policyService.ListPolicies(c.Context(), filters)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policies))
}

func (h *PolicyHandler) GetPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	policy, err := h.policyService.GetPolicy(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) GetPolicyByNumber(c fiber.Ctx) error {
	policy, err := h.policyService.GetPolicyByNumber(c.Context(), c.Params("policyNumber"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) MarkQuoted(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	policy, err := h.policyService.MarkQuoted(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) ActivatePolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	policy, err := h.policyService.ActivatePolicy(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) SuspendPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	policy, err := h.policyService.SuspendPolicy(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) CancelPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.CancelPolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	policy, err := h.policyService.CancelPolicy(c.Context(), id, req.Reason)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(policy))
}

func (h *PolicyHandler) RenewPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.RenewPolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	renewal, err := h.policyService.RenewPolicy(c.Context(), id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(renewal))
}
