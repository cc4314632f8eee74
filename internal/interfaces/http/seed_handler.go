package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// SeedHandler carga de datos de demostración.
type SeedHandler struct {
	uc *usecase.SeedUseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *usecase.SeedUseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Run godoc
// @Summary      Carregar dados de demonstração (idempotente)
// @Tags         seeds
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SeedResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/seeds [post]
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.UserContext(), actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
