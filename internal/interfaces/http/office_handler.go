package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// OfficeHandler maneja las peticiones HTTP para escritorios.
type OfficeHandler struct {
	uc *usecase.OfficeUseCase
}

// NewOfficeHandler construye el handler inyectando el caso de uso.
func NewOfficeHandler(uc *usecase.OfficeUseCase) *OfficeHandler {
	return &OfficeHandler{uc: uc}
}

// Create godoc
// @Summary      Criar escritório
// @Tags         escritorios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOfficeRequest  true  "Dados do escritório"
// @Success      201   {object}  dto.OfficeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/escritorios [post]
func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter escritório por ID
// @Tags         escritorios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do escritório"
// @Success      200  {object}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escritorios/{id} [get]
func (h *OfficeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar escritórios
// @Tags         escritorios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.OfficeResponse
// @Router       /api/escritorios [get]
func (h *OfficeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar escritório (parcial)
// @Tags         escritorios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "ID do escritório"
// @Param        body  body  dto.UpdateOfficeRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.OfficeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/escritorios/{id} [put]
func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir escritório
// @Tags         escritorios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do escritório"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/escritorios/{id} [delete]
func (h *OfficeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Deleted)
}
