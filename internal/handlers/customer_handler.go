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

type CustomerHandler struct {
	customerService *services.CustomerService
	vehicleService  *services.VehicleService
	auth            *AuthMiddleware
}

func NewCustomerHandler(customerService *services.CustomerService, vehicleService *services.VehicleService, auth *AuthMiddleware) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		vehicleService:  vehicleService,
		auth:            auth,
	}
}

func (h *CustomerHandler) Register(app *fiber.App) {
	gr := app.Group("backoffice/protected/api/v1/customers", h.auth.RequireAuth())
	gr.Post("/", h.RegisterCustomer)
	gr.Get("/", h.ListCustomers)
	gr.Get("/by-national-id/:nationalID", h.GetCustomerByNationalID)
	gr.Get("/:id", h.GetCustomer)
	gr.Put("/:id", h.UpdateCustomer)
	gr.Post("/:id/kyc-verify", h.MarkKYCVerified, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
	gr.Delete("/:id", h.DeactivateCustomer, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
	gr.Get("/:id/vehicles", h.GetCustomerVehicles)
}

func (h *CustomerHandler) RegisterCustomer(c fiber.Ctx) error {
	var req models.RegisterCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	customer, err := h.customerService.RegisterCustomer(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) ListCustomers(c fiber.Ctx) error {
	customers, err := h.customerService.ListCustomers(c.Context())
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customers))
}

func (h *CustomerHandler) GetCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	customer, err := h.customerService.GetCustomer(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) GetCustomerByNationalID(c fiber.Ctx) error {
	customer, err := h.customerService.GetCustomerByNationalID(c.Context(), c.Params("nationalID"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) UpdateCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	var req models.UpdateCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	customer, err := h.customerService.UpdateCustomer(c.Context(), id, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) MarkKYCVerified(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	customer, err := h.customerService.MarkKYCVerified(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) DeactivateCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	if err := h.customerService.DeactivateCustomer(c.Context(), id); err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]string{
		"message": "customer deactivated",
	}))
}

func (h *CustomerHandler) GetCustomerVehicles(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	vehicles, err := h.vehicleService.GetVehiclesByCustomer(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(vehicles))
}
