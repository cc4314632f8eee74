package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.ParameterRepository = (*ParameterRepo)(nil)

// ParameterRepo parámetros clave/valor; chave es única.
type ParameterRepo struct {
	q Querier
}

// NewParameterRepository construye el repositorio de parámetros.
func NewParameterRepository(q Querier) *ParameterRepo {
	return &ParameterRepo{q: q}
}

func scanParameter(row pgx.Row) (*entity.Parameter, error) {
	var p entity.Parameter
	if err := row.Scan(&p.ID, &p.Chave, &p.Valor); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParameterRepo) Create(ctx context.Context, p *entity.Parameter) error {
	err := r.q.QueryRow(ctx, `INSERT INTO parametros (chave, valor) VALUES ($1, $2) RETURNING id`,
		p.Chave, p.Valor).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert parametro: %w", mapWriteErr(err, "parâmetro "+p.Chave+" já existe"))
	}
	return nil
}

func (r *ParameterRepo) GetByID(ctx context.Context, id int64) (*entity.Parameter, error) {
	p, err := one(r.q.QueryRow(ctx, `SELECT id, chave, valor FROM parametros WHERE id = $1`, id), scanParameter)
	if err != nil {
		return nil, fmt.Errorf("get parametro: %w", err)
	}
	return p, nil
}

func (r *ParameterRepo) GetByKey(ctx context.Context, chave string) (*entity.Parameter, error) {
	p, err := one(r.q.QueryRow(ctx, `SELECT id, chave, valor FROM parametros WHERE chave = $1`, chave), scanParameter)
	if err != nil {
		return nil, fmt.Errorf("get parametro by chave: %w", err)
	}
	return p, nil
}

func (r *ParameterRepo) List(ctx context.Context) ([]*entity.Parameter, error) {
	rows, err := r.q.Query(ctx, `SELECT id, chave, valor FROM parametros ORDER BY chave`)
	if err != nil {
		return nil, fmt.Errorf("list parametros: %w", err)
	}
	return collect(rows, scanParameter)
}

func (r *ParameterRepo) Update(ctx context.Context, p *entity.Parameter) error {
	tag, err := r.q.Exec(ctx, `UPDATE parametros SET chave = $2, valor = $3 WHERE id = $1`, p.ID, p.Chave, p.Valor)
	if err != nil {
		return fmt.Errorf("update parametro: %w", mapWriteErr(err, "parâmetro "+p.Chave+" já existe"))
	}
	return affected(tag, "parâmetro")
}

func (r *ParameterRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM parametros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parametro: %w", err)
	}
	return affected(tag, "parâmetro")
}
