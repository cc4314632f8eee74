package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Nome     string `json:"nome"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

func (r CreateClientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, required, maxLen(200)),
		validation.Field(&r.CPFCNPJ, maxLen(20)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
	)
}

// UpdateClientRequest actualización parcial.
type UpdateClientRequest struct {
	Nome     *string `json:"nome"`
	CPFCNPJ  *string `json:"cpf_cnpj"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

func (r UpdateClientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, notEmpty, maxLen(200)),
		validation.Field(&r.CPFCNPJ, maxLen(20)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
	)
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}
