package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.LawyerRepository = (*LawyerRepo)(nil)

const lawyerColumns = `id, nome, oab, email, telefone, especialidade_id`

// LawyerRepo persistencia de abogados.
type LawyerRepo struct {
	q Querier
}

// NewLawyerRepository construye el repositorio de abogados.
func NewLawyerRepository(q Querier) *LawyerRepo {
	return &LawyerRepo{q: q}
}

func scanLawyer(row pgx.Row) (*entity.Lawyer, error) {
	var l entity.Lawyer
	if err := row.Scan(&l.ID, &l.Nome, &l.OAB, &l.Email, &l.Telefone, &l.EspecialidadeID); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LawyerRepo) Create(ctx context.Context, l *entity.Lawyer) error {
	query := `
		INSERT INTO advogados (nome, oab, email, telefone, especialidade_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, l.Nome, l.OAB, l.Email, l.Telefone, l.EspecialidadeID).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert advogado: %w", mapWriteErr(err, "advogado duplicado"))
	}
	return nil
}

func (r *LawyerRepo) GetByID(ctx context.Context, id int64) (*entity.Lawyer, error) {
	l, err := one(r.q.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM advogados WHERE id = $1`, id), scanLawyer)
	if err != nil {
		return nil, fmt.Errorf("get advogado: %w", err)
	}
	return l, nil
}

func (r *LawyerRepo) GetByName(ctx context.Context, nome string) (*entity.Lawyer, error) {
	l, err := one(r.q.QueryRow(ctx,
		`SELECT `+lawyerColumns+` FROM advogados WHERE nome = $1 ORDER BY id LIMIT 1`, nome), scanLawyer)
	if err != nil {
		return nil, fmt.Errorf("get advogado by nome: %w", err)
	}
	return l, nil
}

func (r *LawyerRepo) List(ctx context.Context) ([]*entity.Lawyer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+lawyerColumns+` FROM advogados ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list advogados: %w", err)
	}
	return collect(rows, scanLawyer)
}

func (r *LawyerRepo) Update(ctx context.Context, l *entity.Lawyer) error {
	query := `
		UPDATE advogados SET nome = $2, oab = $3, email = $4, telefone = $5, especialidade_id = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, l.ID, l.Nome, l.OAB, l.Email, l.Telefone, l.EspecialidadeID)
	if err != nil {
		return fmt.Errorf("update advogado: %w", mapWriteErr(err, "advogado duplicado"))
	}
	return affected(tag, "advogado")
}

func (r *LawyerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM advogados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete advogado: %w", err)
	}
	return affected(tag, "advogado")
}
