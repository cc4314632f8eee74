package dto

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCaseRequest entrada para crear una causa. DataDistribuicao acepta
// aaaa-mm-dd, dd/mm/aaaa y otros formatos reconocibles; Valor número o texto.
type CreateCaseRequest struct {
	Numero           string  `json:"numero"`
	Descricao        string  `json:"descricao"`
	Status           string  `json:"status"`
	ClienteID        *int64  `json:"cliente_id"`
	AdvogadoID       *int64  `json:"advogado_id"`
	EscritorioID     *int64  `json:"escritorio_id"`
	EspecialidadeID  *int64  `json:"especialidade_id"`
	DataDistribuicao *string `json:"dataDistribuicao"`
	Valor            *Amount `json:"valor"`
}

func (r CreateCaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Numero, required, maxLen(50)),
		validation.Field(&r.Descricao, maxLen(2000)),
		validation.Field(&r.Status, maxLen(50)),
	)
}

// UpdateCaseRequest actualización parcial. Las referencias con null explícito
// se desvinculan.
type UpdateCaseRequest struct {
	Numero           *string         `json:"numero"`
	Descricao        *string         `json:"descricao"`
	Status           *string         `json:"status"`
	ClienteID        Optional[int64] `json:"cliente_id" swaggertype:"integer"`
	AdvogadoID       Optional[int64] `json:"advogado_id" swaggertype:"integer"`
	EscritorioID     Optional[int64] `json:"escritorio_id" swaggertype:"integer"`
	EspecialidadeID  Optional[int64] `json:"especialidade_id" swaggertype:"integer"`
	DataDistribuicao *string         `json:"dataDistribuicao"`
	Valor            *Amount         `json:"valor"`
}

func (r UpdateCaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Numero, notEmpty, maxLen(50)),
		validation.Field(&r.Descricao, maxLen(2000)),
		validation.Field(&r.Status, maxLen(50)),
	)
}

// CaseResponse salida de una causa. Valor se emite como número con 2 decimales.
type CaseResponse struct {
	ID               int64        `json:"id"`
	Numero           string       `json:"numero"`
	Descricao        string       `json:"descricao"`
	Status           string       `json:"status"`
	ClienteID        *int64       `json:"cliente_id"`
	AdvogadoID       *int64       `json:"advogado_id"`
	EscritorioID     *int64       `json:"escritorio_id"`
	EspecialidadeID  *int64       `json:"especialidade_id"`
	DataDistribuicao *string      `json:"dataDistribuicao"`
	Valor            *json.Number `json:"valor"`
}

// CaseSumResponse total de valores.
type CaseSumResponse struct {
	Total json.Number `json:"total"`
}
