package postgres

import (
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store agrupa los repos sobre un mismo Querier (pool o transacción).
type Store struct {
	q Querier
}

// NewStore construye el store sobre el pool o sobre una pgx.Tx.
func NewStore(q Querier) *Store {
	return &Store{q: q}
}

func (s *Store) Offices() repository.OfficeRepository        { return NewOfficeRepository(s.q) }
func (s *Store) Lawyers() repository.LawyerRepository        { return NewLawyerRepository(s.q) }
func (s *Store) Clients() repository.ClientRepository        { return NewClientRepository(s.q) }
func (s *Store) Cases() repository.CaseRepository            { return NewCaseRepository(s.q) }
func (s *Store) Specialties() repository.SpecialtyRepository { return NewSpecialtyRepository(s.q) }
func (s *Store) Profiles() repository.CatalogRepository {
	return NewCatalogRepository(s.q, "perfis", "perfil")
}
func (s *Store) Permissions() repository.CatalogRepository {
	return NewCatalogRepository(s.q, "permissoes", "permissão")
}
func (s *Store) Parameters() repository.ParameterRepository { return NewParameterRepository(s.q) }
func (s *Store) Users() repository.UserRepository           { return NewUserRepository(s.q) }

func (s *Store) LawyerOffices() repository.MembershipRepository {
	return NewMembershipRepository(s.q, "advogado_escritorios", "advogado_id", "escritorio_id")
}

func (s *Store) UserOffices() repository.MembershipRepository {
	return NewMembershipRepository(s.q, "usuario_escritorios", "usuario_id", "escritorio_id")
}

func (s *Store) Audit() repository.AuditRepository { return NewAuditRepository(s.q) }
