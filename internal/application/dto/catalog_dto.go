package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

// CatalogRequest entrada para especialidades, perfiles y permisos.
type CatalogRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

func (r CatalogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, required, maxLen(200)),
		validation.Field(&r.Descricao, maxLen(1000)),
	)
}

// UpdateCatalogRequest actualización parcial de un catálogo.
type UpdateCatalogRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
}

func (r UpdateCatalogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, notEmpty, maxLen(200)),
		validation.Field(&r.Descricao, maxLen(1000)),
	)
}

// CatalogResponse salida de un registro de catálogo.
type CatalogResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}
