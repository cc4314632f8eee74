package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var (
	_ repository.CatalogRepository   = (*CatalogRepo)(nil)
	_ repository.SpecialtyRepository = (*SpecialtyRepo)(nil)
)

// CatalogRepo tabla (id, nome, descricao). Se instancia para perfis y permissoes.
type CatalogRepo struct {
	q     Querier
	table string // identificador fijo, nunca entrada del usuario
	what  string
}

// NewCatalogRepository construye el repositorio sobre table.
func NewCatalogRepository(q Querier, table, what string) *CatalogRepo {
	return &CatalogRepo{q: q, table: table, what: what}
}

func scanCatalog(row pgx.Row) (*entity.CatalogItem, error) {
	var c entity.CatalogItem
	if err := row.Scan(&c.ID, &c.Nome, &c.Descricao); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepo) sql(format string) string {
	return fmt.Sprintf(format, r.table)
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.CatalogItem) error {
	err := r.q.QueryRow(ctx, r.sql(`INSERT INTO %s (nome, descricao) VALUES ($1, $2) RETURNING id`),
		c.Nome, c.Descricao).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.table, mapWriteErr(err, r.what+" já existe"))
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	c, err := one(r.q.QueryRow(ctx, r.sql(`SELECT id, nome, descricao FROM %s WHERE id = $1`), id), scanCatalog)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return c, nil
}

func (r *CatalogRepo) GetByName(ctx context.Context, nome string) (*entity.CatalogItem, error) {
	c, err := one(r.q.QueryRow(ctx,
		r.sql(`SELECT id, nome, descricao FROM %s WHERE nome = $1 ORDER BY id LIMIT 1`), nome), scanCatalog)
	if err != nil {
		return nil, fmt.Errorf("get %s by nome: %w", r.table, err)
	}
	return c, nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]*entity.CatalogItem, error) {
	rows, err := r.q.Query(ctx, r.sql(`SELECT id, nome, descricao FROM %s ORDER BY id`))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return collect(rows, scanCatalog)
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.CatalogItem) error {
	tag, err := r.q.Exec(ctx, r.sql(`UPDATE %s SET nome = $2, descricao = $3 WHERE id = $1`),
		c.ID, c.Nome, c.Descricao)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table, mapWriteErr(err, r.what+" já existe"))
	}
	return affected(tag, r.what)
}

func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, r.sql(`DELETE FROM %s WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	return affected(tag, r.what)
}

// SpecialtyRepo especialidades: misma forma que un catálogo, tipo propio.
type SpecialtyRepo struct {
	cat *CatalogRepo
}

// NewSpecialtyRepository construye el repositorio de especialidades.
func NewSpecialtyRepository(q Querier) *SpecialtyRepo {
	return &SpecialtyRepo{cat: NewCatalogRepository(q, "especialidades", "especialidade")}
}

func toSpecialty(c *entity.CatalogItem) *entity.Specialty {
	if c == nil {
		return nil
	}
	return &entity.Specialty{ID: c.ID, Nome: c.Nome, Descricao: c.Descricao}
}

func fromSpecialty(s *entity.Specialty) *entity.CatalogItem {
	return &entity.CatalogItem{ID: s.ID, Nome: s.Nome, Descricao: s.Descricao}
}

func (r *SpecialtyRepo) Create(ctx context.Context, s *entity.Specialty) error {
	c := fromSpecialty(s)
	if err := r.cat.Create(ctx, c); err != nil {
		return err
	}
	s.ID = c.ID
	return nil
}

func (r *SpecialtyRepo) GetByID(ctx context.Context, id int64) (*entity.Specialty, error) {
	c, err := r.cat.GetByID(ctx, id)
	return toSpecialty(c), err
}

func (r *SpecialtyRepo) GetByName(ctx context.Context, nome string) (*entity.Specialty, error) {
	c, err := r.cat.GetByName(ctx, nome)
	return toSpecialty(c), err
}

func (r *SpecialtyRepo) List(ctx context.Context) ([]*entity.Specialty, error) {
	items, err := r.cat.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Specialty, 0, len(items))
	for _, c := range items {
		out = append(out, toSpecialty(c))
	}
	return out, nil
}

func (r *SpecialtyRepo) Update(ctx context.Context, s *entity.Specialty) error {
	return r.cat.Update(ctx, fromSpecialty(s))
}

func (r *SpecialtyRepo) Delete(ctx context.Context, id int64) error {
	return r.cat.Delete(ctx, id)
}
