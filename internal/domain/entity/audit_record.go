package entity

import "time"

// Acciones de auditoría.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Tipos de entidad registrados en auditoría.
const (
	EntityOffices     = "Escritorios"
	EntityLawyers     = "Advogados"
	EntityClients     = "Clientes"
	EntityCases       = "CausasProcessos"
	EntitySpecialties = "Especialidades"
	EntityUsers       = "Usuarios"
	EntityProfiles    = "Perfil"
	EntityPermissions = "Permissoes"
	EntityParameters  = "Parametros"
)

// AuditRecord entrada inmutable del registro de auditoría.
type AuditRecord struct {
	ID         int64
	Entidade   string
	EntidadeID int64
	Acao       string // create | update | delete
	Quem       string // actor
	Quando     time.Time
	Diff       string // JSON {"before":{...},"after":{...}}
}
