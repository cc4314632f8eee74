package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
)

// CaseHandler causas/procesos. Lecturas acotadas al escritorio de la sesión.
type CaseHandler struct {
	uc *usecase.CaseUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// Create godoc
// @Summary      Criar causa
// @Description  dataDistribuicao aceita aaaa-mm-dd ou dd/mm/aaaa; valor aceita número ou texto ("1.234,50").
// @Tags         causas-processos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCaseRequest  true  "Dados da causa"
// @Success      201   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/causas-processos [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), caller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter causa
// @Tags         causas-processos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID da causa"
// @Success      200  {object}  dto.CaseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/causas-processos/{id} [get]
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), caller(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar causas do escritório da sessão
// @Tags         causas-processos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CaseResponse
// @Router       /api/causas-processos [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sum godoc
// @Summary      Soma do valor das causas do escritório da sessão
// @Tags         causas-processos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CaseSumResponse
// @Router       /api/causas-processos/sum [get]
func (h *CaseHandler) Sum(c *fiber.Ctx) error {
	out, err := h.uc.Sum(c.UserContext(), caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar causa (parcial)
// @Tags         causas-processos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "ID da causa"
// @Param        body  body  dto.UpdateCaseRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/causas-processos/{id} [put]
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), caller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir causa
// @Tags         causas-processos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID da causa"
// @Success      200  {object}  dto.StatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/causas-processos/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), caller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Deleted)
}

// PDF godoc
// @Summary      Ficha da causa em PDF
// @Tags         causas-processos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "ID da causa"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/causas-processos/{id}/pdf [get]
func (h *CaseHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.uc.SheetPDF(c.UserContext(), caller(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}
