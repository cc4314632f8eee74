package dto

import "time"

// AuditResponse registro de auditoría.
type AuditResponse struct {
	ID         int64     `json:"id"`
	Entidade   string    `json:"entidade"`
	EntidadeID int64     `json:"entidade_id"`
	Acao       string    `json:"acao"`
	Quem       string    `json:"quem"`
	Quando     time.Time `json:"quando"`
	Diff       string    `json:"diff"`
}

// SeedResponse resumen de la carga de datos de demostración.
type SeedResponse struct {
	Status  string         `json:"status"`
	Created map[string]int `json:"created"`
}
