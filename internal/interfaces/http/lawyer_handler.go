package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// LawyerHandler abogados y sus escritorios.
type LawyerHandler struct {
	uc *usecase.LawyerUseCase
}

// NewLawyerHandler construye el handler.
func NewLawyerHandler(uc *usecase.LawyerUseCase) *LawyerHandler {
	return &LawyerHandler{uc: uc}
}

// Create godoc
// @Summary      Criar advogado com escritórios
// @Tags         advogados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateLawyerRequest  true  "Dados do advogado e escritorios_ids"
// @Success      201   {object}  dto.LawyerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/advogados [post]
func (h *LawyerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLawyerRequest
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
// @Summary      Obter advogado
// @Tags         advogados
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do advogado"
// @Success      200  {object}  dto.LawyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/advogados/{id} [get]
func (h *LawyerHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar advogados
// @Tags         advogados
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.LawyerResponse
// @Router       /api/advogados [get]
func (h *LawyerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Offices godoc
// @Summary      Escritórios do advogado
// @Tags         advogados
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do advogado"
// @Success      200  {array}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/advogados/{id}/escritorios [get]
func (h *LawyerHandler) Offices(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Offices(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar advogado; escritorios_ids substitui o conjunto de vínculos
// @Tags         advogados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "ID do advogado"
// @Param        body  body  dto.UpdateLawyerRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.LawyerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/advogados/{id} [put]
func (h *LawyerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLawyerRequest
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
// @Summary      Excluir advogado
// @Tags         advogados
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID do advogado"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/advogados/{id} [delete]
func (h *LawyerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Deleted)
}
