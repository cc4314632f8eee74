package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateLawyerRequest entrada para crear un abogado con sus escritorios.
type CreateLawyerRequest struct {
	Nome            string  `json:"nome"`
	OAB             string  `json:"oab"`
	Email           string  `json:"email"`
	Telefone        string  `json:"telefone"`
	EspecialidadeID *int64  `json:"especialidade_id"`
	EscritoriosIDs  []int64 `json:"escritorios_ids"`
}

func (r CreateLawyerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, required, maxLen(200)),
		validation.Field(&r.OAB, maxLen(30)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
		validation.Field(&r.EscritoriosIDs, positiveIDsRule),
	)
}

// UpdateLawyerRequest actualización parcial. EscritoriosIDs nil = no tocar
// los vínculos; lista vacía = quitar todos.
type UpdateLawyerRequest struct {
	Nome            *string         `json:"nome"`
	OAB             *string         `json:"oab"`
	Email           *string         `json:"email"`
	Telefone        *string         `json:"telefone"`
	EspecialidadeID Optional[int64] `json:"especialidade_id" swaggertype:"integer"`
	EscritoriosIDs  *[]int64        `json:"escritorios_ids"`
}

func (r UpdateLawyerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, notEmpty, maxLen(200)),
		validation.Field(&r.OAB, maxLen(30)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Telefone, maxLen(30)),
		validation.Field(&r.EscritoriosIDs, positiveIDsRule),
	)
}

// LawyerResponse salida de un abogado con los escritorios vinculados.
type LawyerResponse struct {
	ID              int64       `json:"id"`
	Nome            string      `json:"nome"`
	OAB             string      `json:"oab"`
	Email           string      `json:"email"`
	Telefone        string      `json:"telefone"`
	EspecialidadeID *int64      `json:"especialidade_id"`
	EscritoriosIDs  []int64     `json:"escritorios_ids"`
	Escritorios     []OfficeRef `json:"escritorios"`
}

// LawyerRef referencia corta a un abogado (respuesta de /auth/me).
type LawyerRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
	OAB  string `json:"oab"`
}
