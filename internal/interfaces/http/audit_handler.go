package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// AuditHandler consulta del registro de auditoría.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Registros de auditoria mais recentes
// @Tags         auditoria
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Máximo de registros (máx. 200)"
// @Success      200    {array}   dto.AuditResponse
// @Router       /api/auditoria [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
