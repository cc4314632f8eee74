// Package memstore implementación en memoria de repository.Store y
// repository.TxRunner para tests. Run trabaja sobre una copia del estado y
// solo la publica si fn no devuelve error, igual que una transacción.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

type pair [2]int64

type state struct {
	seq           int64
	offices       map[int64]entity.Office
	lawyers       map[int64]entity.Lawyer
	clients       map[int64]entity.Client
	cases         map[int64]entity.Case
	specialties   map[int64]entity.Specialty
	profiles      map[int64]entity.CatalogItem
	permissions   map[int64]entity.CatalogItem
	parameters    map[int64]entity.Parameter
	users         map[int64]entity.User
	lawyerOffices map[pair]struct{}
	userOffices   map[pair]struct{}
	audit         []entity.AuditRecord
}

func newState() *state {
	return &state{
		offices:       map[int64]entity.Office{},
		lawyers:       map[int64]entity.Lawyer{},
		clients:       map[int64]entity.Client{},
		cases:         map[int64]entity.Case{},
		specialties:   map[int64]entity.Specialty{},
		profiles:      map[int64]entity.CatalogItem{},
		permissions:   map[int64]entity.CatalogItem{},
		parameters:    map[int64]entity.Parameter{},
		users:         map[int64]entity.User{},
		lawyerOffices: map[pair]struct{}{},
		userOffices:   map[pair]struct{}{},
	}
}

func (s *state) clone() *state {
	return &state{
		seq:           s.seq,
		offices:       maps.Clone(s.offices),
		lawyers:       maps.Clone(s.lawyers),
		clients:       maps.Clone(s.clients),
		cases:         maps.Clone(s.cases),
		specialties:   maps.Clone(s.specialties),
		profiles:      maps.Clone(s.profiles),
		permissions:   maps.Clone(s.permissions),
		parameters:    maps.Clone(s.parameters),
		users:         maps.Clone(s.users),
		lawyerOffices: maps.Clone(s.lawyerOffices),
		userOffices:   maps.Clone(s.userOffices),
		audit:         slices.Clone(s.audit),
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// DB base de datos en memoria.
type DB struct {
	mu        sync.Mutex
	st        *state
	auditErr  error
	appendHit int
}

// New crea una base vacía.
func New() *DB {
	return &DB{st: newState()}
}

// FailAudit hace que todo Append posterior devuelva err (nil restablece).
func (db *DB) FailAudit(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.auditErr = err
}

// Store vista fuera de transacción: cada operación toma el lock.
func (db *DB) Store() repository.Store {
	return &view{db: db, locked: false}
}

// Run ejecuta fn sobre una copia del estado y la publica si fn no falla.
func (db *DB) Run(ctx context.Context, fn func(s repository.Store) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	work := db.st.clone()
	if err := fn(&view{db: db, st: work, locked: true}); err != nil {
		return err
	}
	db.st = work
	return nil
}

// AuditRecords copia de todos los registros de auditoría, en orden de inserción.
func (db *DB) AuditRecords() []entity.AuditRecord {
	db.mu.Lock()
	defer db.mu.Unlock()
	return slices.Clone(db.st.audit)
}

// LawyerOfficePairs vínculos abogado↔escritorio actuales.
func (db *DB) LawyerOfficePairs(lawyerID int64) []int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	return members(db.st.lawyerOffices, lawyerID)
}

var (
	_ repository.Store    = (*view)(nil)
	_ repository.TxRunner = (*DB)(nil)
)

// view implementa Store sobre un estado. Dentro de Run el lock ya está tomado.
type view struct {
	db     *DB
	st     *state
	locked bool
}

func (v *view) do(fn func(st *state) error) error {
	if v.locked {
		return fn(v.st)
	}
	v.db.mu.Lock()
	defer v.db.mu.Unlock()
	return fn(v.db.st)
}

func (v *view) Offices() repository.OfficeRepository           { return officeRepo{v} }
func (v *view) Lawyers() repository.LawyerRepository           { return lawyerRepo{v} }
func (v *view) Clients() repository.ClientRepository           { return clientRepo{v} }
func (v *view) Cases() repository.CaseRepository               { return caseRepo{v} }
func (v *view) Specialties() repository.SpecialtyRepository    { return specialtyRepo{v} }
func (v *view) Profiles() repository.CatalogRepository         { return catalogRepo{v, false} }
func (v *view) Permissions() repository.CatalogRepository      { return catalogRepo{v, true} }
func (v *view) Parameters() repository.ParameterRepository     { return parameterRepo{v} }
func (v *view) Users() repository.UserRepository               { return userRepo{v} }
func (v *view) LawyerOffices() repository.MembershipRepository { return linkRepo{v, false} }
func (v *view) UserOffices() repository.MembershipRepository   { return linkRepo{v, true} }
func (v *view) Audit() repository.AuditRepository              { return auditRepo{v} }

// ── helpers genéricos ─────────────────────────────────────────────────────────

func get[T any](m map[int64]T, id int64) *T {
	row, ok := m[id]
	if !ok {
		return nil
	}
	return &row
}

func list[T any](m map[int64]T, keep func(T) bool) []*T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		row := m[id]
		if keep == nil || keep(row) {
			out = append(out, &row)
		}
	}
	return out
}

func find[T any](m map[int64]T, match func(T) bool) *T {
	for _, row := range list(m, match) {
		return row
	}
	return nil
}

func members(m map[pair]struct{}, owner int64) []int64 {
	var out []int64
	for p := range m {
		if p[0] == owner {
			out = append(out, p[1])
		}
	}
	slices.Sort(out)
	return out
}

func requireRow[T any](m map[int64]T, id int64) error {
	if _, ok := m[id]; !ok {
		return domain.NotFound("registro")
	}
	return nil
}

// ── repos ─────────────────────────────────────────────────────────────────────

type officeRepo struct{ v *view }

func (r officeRepo) Create(_ context.Context, o *entity.Office) error {
	return r.v.do(func(st *state) error {
		o.ID = st.nextID()
		st.offices[o.ID] = *o
		return nil
	})
}
func (r officeRepo) GetByID(_ context.Context, id int64) (out *entity.Office, err error) {
	err = r.v.do(func(st *state) error { out = get(st.offices, id); return nil })
	return
}
func (r officeRepo) GetByName(_ context.Context, nome string) (out *entity.Office, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.offices, func(o entity.Office) bool { return o.Nome == nome })
		return nil
	})
	return
}
func (r officeRepo) List(_ context.Context) (out []*entity.Office, err error) {
	err = r.v.do(func(st *state) error { out = list(st.offices, nil); return nil })
	return
}
func (r officeRepo) ListByIDs(_ context.Context, ids []int64) (out []*entity.Office, err error) {
	err = r.v.do(func(st *state) error {
		out = list(st.offices, func(o entity.Office) bool { return slices.Contains(ids, o.ID) })
		return nil
	})
	return
}
func (r officeRepo) Update(_ context.Context, o *entity.Office) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.offices, o.ID); err != nil {
			return err
		}
		st.offices[o.ID] = *o
		return nil
	})
}
func (r officeRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.offices, id)
		for p := range st.lawyerOffices {
			if p[1] == id {
				delete(st.lawyerOffices, p)
			}
		}
		for p := range st.userOffices {
			if p[1] == id {
				delete(st.userOffices, p)
			}
		}
		return nil
	})
}

type lawyerRepo struct{ v *view }

func (r lawyerRepo) Create(_ context.Context, l *entity.Lawyer) error {
	return r.v.do(func(st *state) error {
		l.ID = st.nextID()
		st.lawyers[l.ID] = *l
		return nil
	})
}
func (r lawyerRepo) GetByID(_ context.Context, id int64) (out *entity.Lawyer, err error) {
	err = r.v.do(func(st *state) error { out = get(st.lawyers, id); return nil })
	return
}
func (r lawyerRepo) GetByName(_ context.Context, nome string) (out *entity.Lawyer, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.lawyers, func(l entity.Lawyer) bool { return l.Nome == nome })
		return nil
	})
	return
}
func (r lawyerRepo) List(_ context.Context) (out []*entity.Lawyer, err error) {
	err = r.v.do(func(st *state) error { out = list(st.lawyers, nil); return nil })
	return
}
func (r lawyerRepo) Update(_ context.Context, l *entity.Lawyer) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.lawyers, l.ID); err != nil {
			return err
		}
		st.lawyers[l.ID] = *l
		return nil
	})
}
func (r lawyerRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.lawyers, id)
		for p := range st.lawyerOffices {
			if p[0] == id {
				delete(st.lawyerOffices, p)
			}
		}
		return nil
	})
}

type clientRepo struct{ v *view }

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	return r.v.do(func(st *state) error {
		c.ID = st.nextID()
		st.clients[c.ID] = *c
		return nil
	})
}
func (r clientRepo) GetByID(_ context.Context, id int64) (out *entity.Client, err error) {
	err = r.v.do(func(st *state) error { out = get(st.clients, id); return nil })
	return
}
func (r clientRepo) GetByName(_ context.Context, nome string) (out *entity.Client, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.clients, func(c entity.Client) bool { return c.Nome == nome })
		return nil
	})
	return
}
func (r clientRepo) List(_ context.Context) (out []*entity.Client, err error) {
	err = r.v.do(func(st *state) error { out = list(st.clients, nil); return nil })
	return
}
func (r clientRepo) Update(_ context.Context, c *entity.Client) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.clients, c.ID); err != nil {
			return err
		}
		st.clients[c.ID] = *c
		return nil
	})
}
func (r clientRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error { delete(st.clients, id); return nil })
}

type caseRepo struct{ v *view }

func numeroTaken(st *state, numero string, self int64) bool {
	for id, c := range st.cases {
		if id != self && c.Numero == numero {
			return true
		}
	}
	return false
}

func (r caseRepo) Create(_ context.Context, c *entity.Case) error {
	return r.v.do(func(st *state) error {
		if numeroTaken(st, c.Numero, 0) {
			return domain.Errorf(domain.ErrDuplicate, "já existe uma causa com o número %s", c.Numero)
		}
		c.ID = st.nextID()
		st.cases[c.ID] = *c
		return nil
	})
}
func (r caseRepo) GetByID(_ context.Context, id int64) (out *entity.Case, err error) {
	err = r.v.do(func(st *state) error { out = get(st.cases, id); return nil })
	return
}
func (r caseRepo) GetByNumero(_ context.Context, numero string) (out *entity.Case, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.cases, func(c entity.Case) bool { return c.Numero == numero })
		return nil
	})
	return
}
func caseFilter(f repository.CaseFilter) func(entity.Case) bool {
	return func(c entity.Case) bool { return f.OfficeID == 0 || c.BelongsTo(f.OfficeID) }
}
func (r caseRepo) List(_ context.Context, f repository.CaseFilter) (out []*entity.Case, err error) {
	err = r.v.do(func(st *state) error { out = list(st.cases, caseFilter(f)); return nil })
	return
}
func (r caseRepo) SumValor(_ context.Context, f repository.CaseFilter) (total decimal.Decimal, err error) {
	err = r.v.do(func(st *state) error {
		for _, c := range list(st.cases, caseFilter(f)) {
			if c.Valor != nil {
				total = total.Add(*c.Valor)
			}
		}
		return nil
	})
	return
}
func (r caseRepo) Update(_ context.Context, c *entity.Case) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.cases, c.ID); err != nil {
			return err
		}
		if numeroTaken(st, c.Numero, c.ID) {
			return domain.Errorf(domain.ErrDuplicate, "já existe uma causa com o número %s", c.Numero)
		}
		st.cases[c.ID] = *c
		return nil
	})
}
func (r caseRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error { delete(st.cases, id); return nil })
}

type specialtyRepo struct{ v *view }

func (r specialtyRepo) Create(_ context.Context, s *entity.Specialty) error {
	return r.v.do(func(st *state) error {
		s.ID = st.nextID()
		st.specialties[s.ID] = *s
		return nil
	})
}
func (r specialtyRepo) GetByID(_ context.Context, id int64) (out *entity.Specialty, err error) {
	err = r.v.do(func(st *state) error { out = get(st.specialties, id); return nil })
	return
}
func (r specialtyRepo) GetByName(_ context.Context, nome string) (out *entity.Specialty, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.specialties, func(s entity.Specialty) bool { return s.Nome == nome })
		return nil
	})
	return
}
func (r specialtyRepo) List(_ context.Context) (out []*entity.Specialty, err error) {
	err = r.v.do(func(st *state) error { out = list(st.specialties, nil); return nil })
	return
}
func (r specialtyRepo) Update(_ context.Context, s *entity.Specialty) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.specialties, s.ID); err != nil {
			return err
		}
		st.specialties[s.ID] = *s
		return nil
	})
}
func (r specialtyRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error { delete(st.specialties, id); return nil })
}

type catalogRepo struct {
	v           *view
	permissions bool
}

func (r catalogRepo) table(st *state) map[int64]entity.CatalogItem {
	if r.permissions {
		return st.permissions
	}
	return st.profiles
}
func (r catalogRepo) Create(_ context.Context, c *entity.CatalogItem) error {
	return r.v.do(func(st *state) error {
		c.ID = st.nextID()
		r.table(st)[c.ID] = *c
		return nil
	})
}
func (r catalogRepo) GetByID(_ context.Context, id int64) (out *entity.CatalogItem, err error) {
	err = r.v.do(func(st *state) error { out = get(r.table(st), id); return nil })
	return
}
func (r catalogRepo) GetByName(_ context.Context, nome string) (out *entity.CatalogItem, err error) {
	err = r.v.do(func(st *state) error {
		out = find(r.table(st), func(c entity.CatalogItem) bool { return c.Nome == nome })
		return nil
	})
	return
}
func (r catalogRepo) List(_ context.Context) (out []*entity.CatalogItem, err error) {
	err = r.v.do(func(st *state) error { out = list(r.table(st), nil); return nil })
	return
}
func (r catalogRepo) Update(_ context.Context, c *entity.CatalogItem) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(r.table(st), c.ID); err != nil {
			return err
		}
		r.table(st)[c.ID] = *c
		return nil
	})
}
func (r catalogRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error { delete(r.table(st), id); return nil })
}

type parameterRepo struct{ v *view }

func (r parameterRepo) Create(_ context.Context, p *entity.Parameter) error {
	return r.v.do(func(st *state) error {
		if find(st.parameters, func(x entity.Parameter) bool { return x.Chave == p.Chave }) != nil {
			return domain.Errorf(domain.ErrDuplicate, "parâmetro %s já existe", p.Chave)
		}
		p.ID = st.nextID()
		st.parameters[p.ID] = *p
		return nil
	})
}
func (r parameterRepo) GetByID(_ context.Context, id int64) (out *entity.Parameter, err error) {
	err = r.v.do(func(st *state) error { out = get(st.parameters, id); return nil })
	return
}
func (r parameterRepo) GetByKey(_ context.Context, chave string) (out *entity.Parameter, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.parameters, func(p entity.Parameter) bool { return p.Chave == chave })
		return nil
	})
	return
}
func (r parameterRepo) List(_ context.Context) (out []*entity.Parameter, err error) {
	err = r.v.do(func(st *state) error { out = list(st.parameters, nil); return nil })
	return
}
func (r parameterRepo) Update(_ context.Context, p *entity.Parameter) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.parameters, p.ID); err != nil {
			return err
		}
		if other := find(st.parameters, func(x entity.Parameter) bool { return x.Chave == p.Chave && x.ID != p.ID }); other != nil {
			return domain.Errorf(domain.ErrDuplicate, "parâmetro %s já existe", p.Chave)
		}
		st.parameters[p.ID] = *p
		return nil
	})
}
func (r parameterRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error { delete(st.parameters, id); return nil })
}

type userRepo struct{ v *view }

func usernameTaken(st *state, username string, self int64) bool {
	for id, u := range st.users {
		if id != self && strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	return r.v.do(func(st *state) error {
		if usernameTaken(st, u.Username, 0) {
			return domain.Errorf(domain.ErrDuplicate, "usuário %s já existe", u.Username)
		}
		u.ID = st.nextID()
		st.users[u.ID] = *u
		return nil
	})
}
func (r userRepo) GetByID(_ context.Context, id int64) (out *entity.User, err error) {
	err = r.v.do(func(st *state) error { out = get(st.users, id); return nil })
	return
}
func (r userRepo) GetByUsername(_ context.Context, username string) (out *entity.User, err error) {
	err = r.v.do(func(st *state) error {
		out = find(st.users, func(u entity.User) bool { return u.Username == username })
		return nil
	})
	return
}
func (r userRepo) List(_ context.Context) (out []*entity.User, err error) {
	err = r.v.do(func(st *state) error { out = list(st.users, nil); return nil })
	return
}
func (r userRepo) Update(_ context.Context, u *entity.User) error {
	return r.v.do(func(st *state) error {
		if err := requireRow(st.users, u.ID); err != nil {
			return err
		}
		if usernameTaken(st, u.Username, u.ID) {
			return domain.Errorf(domain.ErrDuplicate, "usuário %s já existe", u.Username)
		}
		st.users[u.ID] = *u
		return nil
	})
}
func (r userRepo) Delete(_ context.Context, id int64) error {
	return r.v.do(func(st *state) error {
		delete(st.users, id)
		for p := range st.userOffices {
			if p[0] == id {
				delete(st.userOffices, p)
			}
		}
		return nil
	})
}

type linkRepo struct {
	v     *view
	users bool
}

func (r linkRepo) table(st *state) map[pair]struct{} {
	if r.users {
		return st.userOffices
	}
	return st.lawyerOffices
}
func (r linkRepo) MemberIDs(_ context.Context, owner int64) (out []int64, err error) {
	err = r.v.do(func(st *state) error { out = members(r.table(st), owner); return nil })
	return
}
func (r linkRepo) Exists(_ context.Context, owner, member int64) (ok bool, err error) {
	err = r.v.do(func(st *state) error { _, ok = r.table(st)[pair{owner, member}]; return nil })
	return
}
func (r linkRepo) Add(_ context.Context, owner, member int64) error {
	return r.v.do(func(st *state) error {
		if _, ok := r.table(st)[pair{owner, member}]; ok {
			return domain.Errorf(domain.ErrDuplicate, "vínculo (%d,%d) já existe", owner, member)
		}
		r.table(st)[pair{owner, member}] = struct{}{}
		return nil
	})
}
func (r linkRepo) Remove(_ context.Context, owner, member int64) error {
	return r.v.do(func(st *state) error { delete(r.table(st), pair{owner, member}); return nil })
}

type auditRepo struct{ v *view }

func (r auditRepo) Append(_ context.Context, rec *entity.AuditRecord) error {
	if err := r.v.db.auditErr; err != nil {
		return err
	}
	return r.v.do(func(st *state) error {
		rec.ID = int64(len(st.audit) + 1)
		st.audit = append(st.audit, *rec)
		return nil
	})
}
func (r auditRepo) ListRecent(_ context.Context, limit int) (out []*entity.AuditRecord, err error) {
	err = r.v.do(func(st *state) error {
		for i := len(st.audit) - 1; i >= 0 && len(out) < limit; i-- {
			rec := st.audit[i]
			out = append(out, &rec)
		}
		return nil
	})
	return
}
