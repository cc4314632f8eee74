package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
)

// catalogService lo implementan SpecialtyUseCase y CatalogUseCase (perfis, permissoes).
type catalogService interface {
	Create(ctx context.Context, actor string, in dto.CatalogRequest) (*dto.CatalogResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CatalogResponse, error)
	List(ctx context.Context) ([]dto.CatalogResponse, error)
	Update(ctx context.Context, actor string, id int64, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error)
	Delete(ctx context.Context, actor string, id int64) error
}

// CatalogHandler CRUD de catálogos nome/descricao: especialidades, perfis y permissoes.
type CatalogHandler struct {
	svc catalogService
}

// NewCatalogHandler construye el handler sobre un catálogo.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Create godoc
// @Summary      Criar item de catálogo
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CatalogRequest  true  "nome, descricao"
// @Success      201   {object}  dto.CatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/especialidades [post]
// @Router       /api/perfis [post]
// @Router       /api/permissoes [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter item de catálogo
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/especialidades/{id} [get]
// @Router       /api/perfis/{id} [get]
// @Router       /api/permissoes/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CatalogResponse
// @Router       /api/especialidades [get]
// @Router       /api/perfis [get]
// @Router       /api/permissoes [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar item de catálogo
// @Tags         catalogos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                       true  "ID"
// @Param        body  body  dto.UpdateCatalogRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/especialidades/{id} [put]
// @Router       /api/perfis/{id} [put]
// @Router       /api/permissoes/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), actor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item de catálogo
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/especialidades/{id} [delete]
// @Router       /api/perfis/{id} [delete]
// @Router       /api/permissoes/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Deleted)
}
