package usecase

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/coerce"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
	"github.com/jhoicas/Juridico-api/pkg/password"
)

//go:embed seed_data.json
var defaultSeedData []byte

type seedDataset struct {
	Especialidades []string `json:"especialidades"`
	Escritorios    []struct {
		Nome     string `json:"nome"`
		CNPJ     string `json:"cnpj"`
		Email    string `json:"email"`
		Telefone string `json:"telefone"`
	} `json:"escritorios"`
	Advogados []struct {
		Nome          string   `json:"nome"`
		OAB           string   `json:"oab"`
		Email         string   `json:"email"`
		Telefone      string   `json:"telefone"`
		Especialidade string   `json:"especialidade"`
		Escritorios   []string `json:"escritorios"`
	} `json:"advogados"`
	Clientes []struct {
		Nome     string `json:"nome"`
		CPFCNPJ  string `json:"cpf_cnpj"`
		Email    string `json:"email"`
		Telefone string `json:"telefone"`
	} `json:"clientes"`
	Causas []struct {
		Numero           string `json:"numero"`
		Descricao        string `json:"descricao"`
		Status           string `json:"status"`
		Cliente          string `json:"cliente"`
		Advogado         string `json:"advogado"`
		Especialidade    string `json:"especialidade"`
		DataDistribuicao string `json:"dataDistribuicao"`
		Valor            string `json:"valor"`
	} `json:"causas"`
	Perfis     []dto.CatalogRequest `json:"perfis"`
	Permissoes []dto.CatalogRequest `json:"permissoes"`
	Admin      struct {
		Username   string `json:"username"`
		Nome       string `json:"nome"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		Senha      string `json:"senha"`
		Permissoes string `json:"permissoes"`
	} `json:"admin"`
}

// SeedUseCase carga idempotente de datos de demostración: cada registro se
// busca por su clave natural y solo se crea si no existe.
type SeedUseCase struct {
	Deps
	data []byte
}

// NewSeedUseCase construye el caso de uso con el dataset embebido.
func NewSeedUseCase(d Deps) *SeedUseCase {
	return &SeedUseCase{Deps: d.withDefaults(), data: defaultSeedData}
}

// WithData reemplaza el dataset (tests).
func (uc *SeedUseCase) WithData(data []byte) *SeedUseCase {
	uc.data = data
	return uc
}

// seeder estado de una corrida dentro de la transacción.
type seeder struct {
	uc      *SeedUseCase
	s       repository.Store
	actor   string
	created map[string]int
}

// Run carga el dataset en una única transacción. Una fecha o valor inválido
// aborta toda la carga.
func (uc *SeedUseCase) Run(ctx context.Context, actor string) (*dto.SeedResponse, error) {
	var ds seedDataset
	if err := json.Unmarshal(uc.data, &ds); err != nil {
		return nil, fmt.Errorf("seed: dataset inválido: %w", err)
	}
	created := map[string]int{
		"especialidades":       0,
		"escritorios":          0,
		"advogados":            0,
		"advogado_escritorios": 0,
		"clientes":             0,
		"causas_processos":     0,
		"perfis":               0,
		"permissoes":           0,
		"usuarios":             0,
		"usuario_escritorios":  0,
	}
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		sd := &seeder{uc: uc, s: s, actor: actor, created: created}
		return sd.load(ctx, &ds)
	})
	if err != nil {
		return nil, err
	}
	uc.Log.Info().Interface("created", created).Msg("seed aplicado")
	return &dto.SeedResponse{Status: "OK", Created: created}, nil
}

func (sd *seeder) load(ctx context.Context, ds *seedDataset) error {
	specialties := map[string]int64{}
	for _, nome := range ds.Especialidades {
		id, err := sd.specialty(ctx, nome)
		if err != nil {
			return err
		}
		specialties[normalize.Upper(nome)] = id
	}

	offices := map[string]int64{}
	var officeIDs []int64
	for _, o := range ds.Escritorios {
		id, err := sd.office(ctx, &entity.Office{
			Nome:     normalize.Upper(o.Nome),
			CNPJ:     normalize.Upper(o.CNPJ),
			Email:    normalize.Email(o.Email),
			Telefone: normalize.Upper(o.Telefone),
		})
		if err != nil {
			return err
		}
		offices[normalize.Upper(o.Nome)] = id
		officeIDs = append(officeIDs, id)
	}

	lawyers := map[string]int64{}
	lawyerOffice := map[int64]int64{} // primer escritorio de cada abogado
	for _, a := range ds.Advogados {
		l := &entity.Lawyer{
			Nome:     normalize.Upper(a.Nome),
			OAB:      normalize.Upper(a.OAB),
			Email:    normalize.Email(a.Email),
			Telefone: normalize.Upper(a.Telefone),
		}
		if id, ok := specialties[normalize.Upper(a.Especialidade)]; ok {
			l.EspecialidadeID = &id
		}
		id, err := sd.lawyer(ctx, l)
		if err != nil {
			return err
		}
		lawyers[l.Nome] = id
		for i, name := range a.Escritorios {
			oid, ok := offices[normalize.Upper(name)]
			if !ok {
				return domain.Errorf(domain.ErrInvalidInput, "seed: escritório %q não está no dataset", name)
			}
			if i == 0 {
				lawyerOffice[id] = oid
			}
			if err := sd.link(ctx, sd.s.LawyerOffices(), id, oid, "advogado_escritorios"); err != nil {
				return err
			}
		}
	}

	clients := map[string]int64{}
	for _, c := range ds.Clientes {
		cl := &entity.Client{
			Nome:     normalize.Upper(c.Nome),
			CPFCNPJ:  normalize.Upper(c.CPFCNPJ),
			Email:    normalize.Email(c.Email),
			Telefone: normalize.Upper(c.Telefone),
		}
		id, err := sd.client(ctx, cl)
		if err != nil {
			return err
		}
		clients[cl.Nome] = id
	}

	for _, p := range ds.Causas {
		c := &entity.Case{
			Numero:    normalize.Upper(p.Numero),
			Descricao: normalize.Upper(p.Descricao),
			Status:    normalize.Upper(p.Status),
		}
		if id, ok := clients[normalize.Upper(p.Cliente)]; ok {
			c.ClienteID = &id
		}
		if id, ok := lawyers[normalize.Upper(p.Advogado)]; ok {
			c.AdvogadoID = &id
			if oid, ok := lawyerOffice[id]; ok {
				c.EscritorioID = &oid
			}
		}
		if id, ok := specialties[normalize.Upper(p.Especialidade)]; ok {
			c.EspecialidadeID = &id
		}
		if p.DataDistribuicao != "" {
			t, err := coerce.Date(p.DataDistribuicao)
			if err != nil {
				return domain.Errorf(domain.ErrInvalidInput, "seed: causa %s: %v", c.Numero, err)
			}
			c.DataDistribuicao = &t
		}
		if p.Valor != "" {
			v, err := coerce.MoneyString(p.Valor)
			if err != nil {
				return domain.Errorf(domain.ErrInvalidInput, "seed: causa %s: %v", c.Numero, err)
			}
			c.Valor = &v
		}
		if err := sd.legalCase(ctx, c); err != nil {
			return err
		}
	}

	for _, pf := range ds.Perfis {
		if err := sd.catalog(ctx, sd.s.Profiles(), entity.EntityProfiles, "perfis", pf); err != nil {
			return err
		}
	}
	for _, pm := range ds.Permissoes {
		if err := sd.catalog(ctx, sd.s.Permissions(), entity.EntityPermissions, "permissoes", pm); err != nil {
			return err
		}
	}

	adminID, err := sd.admin(ctx, ds)
	if err != nil {
		return err
	}
	for _, oid := range officeIDs {
		if err := sd.link(ctx, sd.s.UserOffices(), adminID, oid, "usuario_escritorios"); err != nil {
			return err
		}
	}
	return nil
}

func (sd *seeder) specialty(ctx context.Context, nome string) (int64, error) {
	nome = normalize.Upper(nome)
	row, err := sd.s.Specialties().GetByName(ctx, nome)
	if err != nil || row != nil {
		return idOf(row, func(r *entity.Specialty) int64 { return r.ID }), err
	}
	row = &entity.Specialty{Nome: nome}
	if err := sd.s.Specialties().Create(ctx, row); err != nil {
		return 0, err
	}
	return row.ID, sd.audit(ctx, entity.EntitySpecialties, "especialidades", row.ID, row.Snapshot())
}

func (sd *seeder) office(ctx context.Context, o *entity.Office) (int64, error) {
	row, err := sd.s.Offices().GetByName(ctx, o.Nome)
	if err != nil || row != nil {
		return idOf(row, func(r *entity.Office) int64 { return r.ID }), err
	}
	if err := sd.s.Offices().Create(ctx, o); err != nil {
		return 0, err
	}
	return o.ID, sd.audit(ctx, entity.EntityOffices, "escritorios", o.ID, o.Snapshot())
}

func (sd *seeder) lawyer(ctx context.Context, l *entity.Lawyer) (int64, error) {
	row, err := sd.s.Lawyers().GetByName(ctx, l.Nome)
	if err != nil || row != nil {
		return idOf(row, func(r *entity.Lawyer) int64 { return r.ID }), err
	}
	if err := sd.s.Lawyers().Create(ctx, l); err != nil {
		return 0, err
	}
	return l.ID, sd.audit(ctx, entity.EntityLawyers, "advogados", l.ID, l.Snapshot())
}

func (sd *seeder) client(ctx context.Context, c *entity.Client) (int64, error) {
	row, err := sd.s.Clients().GetByName(ctx, c.Nome)
	if err != nil || row != nil {
		return idOf(row, func(r *entity.Client) int64 { return r.ID }), err
	}
	if err := sd.s.Clients().Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, sd.audit(ctx, entity.EntityClients, "clientes", c.ID, c.Snapshot())
}

func (sd *seeder) legalCase(ctx context.Context, c *entity.Case) error {
	row, err := sd.s.Cases().GetByNumero(ctx, c.Numero)
	if err != nil || row != nil {
		return err
	}
	if err := sd.s.Cases().Create(ctx, c); err != nil {
		return err
	}
	return sd.audit(ctx, entity.EntityCases, "causas_processos", c.ID, c.Snapshot())
}

func (sd *seeder) catalog(ctx context.Context, repo repository.CatalogRepository, ent, counter string, in dto.CatalogRequest) error {
	nome := normalize.Upper(in.Nome)
	row, err := repo.GetByName(ctx, nome)
	if err != nil || row != nil {
		return err
	}
	item := &entity.CatalogItem{Nome: nome, Descricao: normalize.Upper(in.Descricao)}
	if err := repo.Create(ctx, item); err != nil {
		return err
	}
	return sd.audit(ctx, ent, counter, item.ID, item.Snapshot())
}

func (sd *seeder) admin(ctx context.Context, ds *seedDataset) (int64, error) {
	a := ds.Admin
	username := normalize.Upper(a.Username)
	row, err := sd.s.Users().GetByUsername(ctx, username)
	if err != nil || row != nil {
		return idOf(row, func(r *entity.User) int64 { return r.ID }), err
	}
	hash, err := password.Hash(a.Senha)
	if err != nil {
		return 0, fmt.Errorf("seed: hashear senha: %w", err)
	}
	u := &entity.User{
		Username: username,
		Nome:     normalize.Upper(a.Nome),
		Email:    normalize.Email(a.Email),
		Role:     normalize.Upper(a.Role),
		Senha:    hash,
	}
	if a.Permissoes != "" {
		perms := a.Permissoes
		u.Permissoes = &perms
	}
	if err := sd.s.Users().Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, sd.audit(ctx, entity.EntityUsers, "usuarios", u.ID, u.Snapshot())
}

func (sd *seeder) link(ctx context.Context, links repository.MembershipRepository, owner, member int64, counter string) error {
	ok, err := links.Exists(ctx, owner, member)
	if err != nil || ok {
		return err
	}
	if err := links.Add(ctx, owner, member); err != nil {
		return err
	}
	sd.created[counter]++
	return nil
}

func (sd *seeder) audit(ctx context.Context, ent, counter string, id int64, after map[string]any) error {
	sd.created[counter]++
	return sd.uc.Recorder.Created(ctx, sd.s.Audit(), ent, id, sd.actor, after)
}

func idOf[T any](row *T, id func(*T) int64) int64 {
	if row == nil {
		return 0
	}
	return id(row)
}
