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

type AuthHandler struct {
	userService *services.UserService
	auth        *AuthMiddleware
}

func NewAuthHandler(userService *services.UserService, auth *AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		auth:        auth,
	}
}

func (h *AuthHandler) Register(app *fiber.App) {
	publicGr := app.Group("backoffice/public/api/v1/auth")
	publicGr.Post("/login", h.Login)

	protectedGr := app.Group("backoffice/protected/api/v1/users", h.auth.RequireAuth())
	protectedGr.Post("/", h.CreateUser, h.auth.RequireRole(models.RoleAdmin))
	protectedGr.Get("/:id", h.GetUser)
	protectedGr.Delete("/:id", h.DeactivateUser, h.auth.RequireRole(models.RoleAdmin))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	token, user, err := h.userService.Login(c.Context(), &req)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", "Invalid username or password"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"token": token,
		"user":  user,
	}))
}

func (h *AuthHandler) CreateUser(c fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		return invalidBodyResponse(c)
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(user))
}

func (h *AuthHandler) GetUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(user))
}

func (h *AuthHandler) DeactivateUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidIDResponse(c)
	}

	if err := h.userService.DeactivateUser(c.Context(), id); err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]string{
		"message": "user deactivated",
	}))
}
