package dto

import validation "github.com/go-ozzo/ozzo-validation/v4"

// LoginRequest credenciales más el escritorio en el que se inicia sesión.
type LoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	EscritorioID int64  `json:"escritorio_id"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, required),
		validation.Field(&r.Password, required),
		validation.Field(&r.EscritorioID, validation.Required.Error("escritório é obrigatório")),
	)
}

// SessionUser datos del usuario devueltos por login y /me.
type SessionUser struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Nome       string  `json:"nome"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Permissoes *string `json:"permissoes"`
}

// LoginResponse token de sesión más usuario y escritorio.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        SessionUser `json:"user"`
	Escritorio  OfficeRef   `json:"escritorio"`
}

// MeResponse identidad completa de la sesión.
type MeResponse struct {
	SessionUser
	Escritorio *OfficeRef `json:"escritorio"`
	Advogado   *LawyerRef `json:"advogado"`
}
