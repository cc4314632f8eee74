package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

// UpsertParameterRequest crea o actualiza un parámetro por chave.
type UpsertParameterRequest struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
}

func (r UpsertParameterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Chave, required, maxLen(100)),
		validation.Field(&r.Valor, maxLen(2000)),
	)
}

// UpdateParameterRequest actualización parcial por id.
type UpdateParameterRequest struct {
	Chave *string `json:"chave"`
	Valor *string `json:"valor"`
}

func (r UpdateParameterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Chave, notEmpty, maxLen(100)),
		validation.Field(&r.Valor, maxLen(2000)),
	)
}

// ParameterResponse salida de un parámetro.
type ParameterResponse struct {
	ID    int64  `json:"id"`
	Chave string `json:"chave"`
	Valor string `json:"valor"`
}
