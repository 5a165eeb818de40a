package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice-service/internal/metrics"
	"backoffice-service/internal/models"
	"backoffice-service/internal/services"
	"backoffice-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type AuthMiddleware struct {
	jwtService *services.JWTService
}

func NewAuthMiddleware(jwtService *services.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth validates the Bearer token and stores the caller identity in
// request locals under "user_id" and "role".
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", "Missing Authorization header"))
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", "Authorization header must be a Bearer token"))
		}

		claims, err := m.jwtService.VerifyToken(tokenString)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", "Invalid or expired token"))
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated caller
// holds one of the given roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("role").(models.UserRole)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(utils.CreateErrorResponse("UNAUTHORIZED", "Missing authentication"))
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(http.StatusForbidden).JSON(utils.CreateErrorResponse("FORBIDDEN", "Insufficient role for this operation"))
	}
}

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		metrics.ObserveRequest(c.Method(), route, strconv.Itoa(c.Response().StatusCode()), time.Since(start))
		return err
	}
}
