package handlers

import (
	"net/http"
	"strings"

	"backoffice-service/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New()

// serviceErrorResponse maps service layer errors onto HTTP responses based on
// the error message conventions used across the services.
func serviceErrorResponse(c fiber.Ctx, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return c.Status(http.StatusNotFound).JSON(utils.CreateErrorResponse("NOT_FOUND", msg))
	case strings.Contains(msg, "state conflict"):
		return c.Status(http.StatusConflict).JSON(utils.CreateErrorResponse("STATE_CONFLICT", msg))
	case strings.Contains(msg, "unauthorized"):
		return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", msg))
	case strings.Contains(msg, "invalid"):
		return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_REQUEST", msg))
	default:
		return c.Status(http.StatusInternalServerError).JSON(utils.CreateErrorResponse("INTERNAL_ERROR", msg))
	}
}

func validationErrorResponse(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("VALIDATION_FAILED", err.Error()))
}

func invalidBodyResponse(c fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
}

func invalidIDResponse(c fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
}
