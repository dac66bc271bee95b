package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/auth"
)

// TokenValidator valida o token administrativo
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAdmin exige um bearer token administrativo válido
func RequireAdmin(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Acesso restrito",
			})
		}

		claims, err := validator.Validate(strings.TrimSpace(token))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Sessão expirada, faça login novamente",
			})
		}

		c.Locals("admin", claims.Subject)
		return c.Next()
	}
}
