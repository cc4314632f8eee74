package repository

import "context"

// Store agrupa los repositorios atados a una misma conexión o transacción.
type Store interface {
	Offices() OfficeRepository
	Lawyers() LawyerRepository
	Clients() ClientRepository
	Cases() CaseRepository
	Specialties() SpecialtyRepository
	Profiles() CatalogRepository
	Permissions() CatalogRepository
	Parameters() ParameterRepository
	Users() UserRepository
	LawyerOffices() MembershipRepository // dueño = abogado, miembro = escritorio
	UserOffices() MembershipRepository   // dueño = usuario, miembro = escritorio
	Audit() AuditRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(s Store) error) error
}
