package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateUserRequest entrada para crear un usuario (senha en texto, se hashea en el use case).
type CreateUserRequest struct {
	Username       string  `json:"username"`
	Nome           string  `json:"nome"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Senha          string  `json:"senha"`
	Permissoes     *string `json:"permissoes"`
	AdvogadoID     *int64  `json:"advogado_id"`
	EscritoriosIDs []int64 `json:"escritorios_ids"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, required, maxLen(100)),
		validation.Field(&r.Nome, required, maxLen(200)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Role, maxLen(50)),
		validation.Field(&r.Senha, passwordRule),
		validation.Field(&r.Permissoes, jsonTextRule),
		validation.Field(&r.EscritoriosIDs, positiveIDsRule),
	)
}

// UpdateUserRequest actualización parcial. Senha nil = conservar la actual;
// advogado_id null desvincula al usuario del abogado.
type UpdateUserRequest struct {
	Username       *string         `json:"username"`
	Nome           *string         `json:"nome"`
	Email          *string         `json:"email"`
	Role           *string         `json:"role"`
	Senha          *string         `json:"senha"`
	Permissoes     *string         `json:"permissoes"`
	AdvogadoID     Optional[int64] `json:"advogado_id" swaggertype:"integer"`
	EscritoriosIDs *[]int64        `json:"escritorios_ids"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, notEmpty, maxLen(100)),
		validation.Field(&r.Nome, notEmpty, maxLen(200)),
		validation.Field(&r.Email, is.EmailFormat),
		validation.Field(&r.Role, maxLen(50)),
		validation.Field(&r.Senha, notEmpty, passwordRule),
		validation.Field(&r.Permissoes, jsonTextRule),
		validation.Field(&r.EscritoriosIDs, positiveIDsRule),
	)
}

// UserResponse salida de un usuario (sin senha).
type UserResponse struct {
	ID             int64       `json:"id"`
	Username       string      `json:"username"`
	Nome           string      `json:"nome"`
	Email          string      `json:"email"`
	Role           string      `json:"role"`
	Permissoes     *string     `json:"permissoes"`
	AdvogadoID     *int64      `json:"advogado_id"`
	EscritoriosIDs []int64     `json:"escritorios_ids"`
	Escritorios    []OfficeRef `json:"escritorios"`
}
