package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
)

// RequireFeature bloquea las rutas de una funcionalidad deshabilitada por
// configuración con 403 FEATURE_DISABLED.
func RequireFeature(name string, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "a funcionalidade '" + name + "' não está habilitada",
			})
		}
		return c.Next()
	}
}
