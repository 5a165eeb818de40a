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

type VehicleHandler struct {
	vehicleService *services.VehicleService
	auth           *AuthMiddleware
}

func NewVehicleHandler(vehicleService *services.VehicleService, auth *AuthMiddleware) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		auth:           auth,
	}
}

func (h *VehicleHandler) Register(app *fiber.App) {
	gr := app.Group("backoffice/protected/api/v1/vehicles", h.auth.RequireAuth())
	gr.Post("/", h.RegisterVehicle)
	gr.Get("/:id", h.GetVehicle)
	gr.Post("/:id/dlt-verify", h.VerifyWithDLT)
	gr.Delete("/:id", h.DeactivateVehicle, h.auth.RequireRole(models.RoleAdmin, models.RoleManager))
}

func (h *VehicleHandler) RegisterVehicle(c fiber.Ctx) error {
	var req models.RegisterVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	vehicle, err := h.vehicleService.RegisterVehicle(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(vehicle))
}

func (h *VehicleHandler) GetVehicle(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(vehicle))
}

func (h *VehicleHandler) VerifyWithDLT(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	vehicle, err := h.vehicleService.VerifyWithDLT(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(vehicle))
}

func (h *VehicleHandler) DeactivateVehicle(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	if err := h.vehicleService.DeactivateVehicle(c.Context(), id); err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]string{
		"message": "vehicle deactivated",
	}))
}
