package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// ParameterHandler parámetros clave/valor.
type ParameterHandler struct {
	uc *usecase.ParameterUseCase
}

// NewParameterHandler construye el handler.
func NewParameterHandler(uc *usecase.ParameterUseCase) *ParameterHandler {
	return &ParameterHandler{uc: uc}
}

// List godoc
// @Summary      Listar parâmetros
// @Tags         parametros
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ParameterResponse
// @Router       /api/parametros [get]
func (h *ParameterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Criar ou atualizar parâmetro pela chave
// @Tags         parametros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertParameterRequest  true  "chave, valor"
// @Success      200   {object}  dto.ParameterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parametros [post]
func (h *ParameterHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertParameterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar parâmetro por ID
// @Tags         parametros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                         true  "ID do parâmetro"
// @Param        body  body  dto.UpdateParameterRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ParameterResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parametros/{id} [put]
func (h *ParameterHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateParameterRequest
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
// @Summary      Excluir parâmetro
// @Tags         parametros
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do parâmetro"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parametros/{id} [delete]
func (h *ParameterHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Deleted)
}
