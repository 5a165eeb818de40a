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

type PaymentHandler struct {
	paymentService *services.PaymentService
	auth           *AuthMiddleware
}

func NewPaymentHandler(paymentService *services.PaymentService, auth *AuthMiddleware) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		auth:           auth,
	}
}

func (h *PaymentHandler) Register(app *fiber.App) {
	gr := app.Group("backoffice/protected/api/v1/payments", h.auth.RequireAuth())
	gr.Post("/", h.CreatePremiumPayment)
	gr.Get("/overdue", h.ListOverduePayments)
	gr.Get("/:id", h.GetPayment)
	gr.Post("/:id/process", h.ProcessPayment)
	gr.Post("/:id/complete", h.CompletePayment)
	gr.Post("/:id/fail", h.FailPayment)
	gr.Post("/:id/cancel", h.CancelPayment)
	gr.Post("/:id/refund", h.RefundPayment, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))

	policyGr := app.Group("backoffice/protected/api/v1/policies", h.auth.RequireAuth())
	policyGr.Get("/:id/payments", h.GetPolicyPayments)
}

func (h *PaymentHandler) CreatePremiumPayment(c fiber.Ctx) error {
	var req models.CreatePaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	payment, err := h.paymentService.CreatePremiumPayment(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) GetPayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	payment, err := h.paymentService.GetPayment(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) GetPolicyPayments(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	payments, err := h.paymentService.GetPaymentsByPolicyID(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payments))
}

func (h *PaymentHandler) ListOverduePayments(c fiber.Ctx) error {
	payments, err := h.paymentService.ListOverduePayments(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payments))
}

func (h *PaymentHandler) ProcessPayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	payment, err := h.paymentService.ProcessPayment(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) CompletePayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	payment, err := h.paymentService.CompletePayment(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) FailPayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.FailPaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	payment, err := h.paymentService.FailPayment(c.Context(), id, req.Reason)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) CancelPayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	payment, err := h.paymentService.CancelPayment(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(payment))
}

func (h *PaymentHandler) RefundPayment(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.RefundPaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	refund, err := h.paymentService.RefundPayment(c.Context(), id, req.Amount)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(refund))
}
