package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateOfficeRequest entrada para crear un escritorio.
type CreateOfficeRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

func (r CreateOfficeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, required, maxLen(200)),
		validation.Field(&r.CNPJ, maxLen(20)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
	)
}

// UpdateOfficeRequest actualización parcial; nil = campo no enviado.
type UpdateOfficeRequest struct {
	Nome     *string `json:"nome"`
	CNPJ     *string `json:"cnpj"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

func (r UpdateOfficeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, notEmpty, maxLen(200)),
		validation.Field(&r.CNPJ, maxLen(20)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
	)
}

// OfficeResponse salida de un escritorio.
type OfficeResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}
