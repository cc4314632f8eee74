package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

const caseColumns = `id, numero, descricao, status, cliente_id, advogado_id, escritorio_id,
	especialidade_id, data_distribuicao, valor`

// CaseRepo persistencia de causas. valor es NUMERIC(14,2), leído como
// decimal.Decimal vía el codec registrado en el pool.
type CaseRepo struct {
	q Querier
}

// NewCaseRepository construye el repositorio de causas.
func NewCaseRepository(q Querier) *CaseRepo {
	return &CaseRepo{q: q}
}

func scanCase(row pgx.Row) (*entity.Case, error) {
	var c entity.Case
	err := row.Scan(&c.ID, &c.Numero, &c.Descricao, &c.Status, &c.ClienteID, &c.AdvogadoID,
		&c.EscritorioID, &c.EspecialidadeID, &c.DataDistribuicao, &c.Valor)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func duplicateNumero(c *entity.Case) string {
	return fmt.Sprintf("causa com número %s já existe", c.Numero)
}

func (r *CaseRepo) Create(ctx context.Context, c *entity.Case) error {
	query := `
		INSERT INTO causas_processos (numero, descricao, status, cliente_id, advogado_id,
			escritorio_id, especialidade_id, data_distribuicao, valor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Numero, c.Descricao, c.Status, c.ClienteID, c.AdvogadoID,
		c.EscritorioID, c.EspecialidadeID, c.DataDistribuicao, c.Valor).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert causa: %w", mapWriteErr(err, duplicateNumero(c)))
	}
	return nil
}

func (r *CaseRepo) GetByID(ctx context.Context, id int64) (*entity.Case, error) {
	c, err := one(r.q.QueryRow(ctx, `SELECT `+caseColumns+` FROM causas_processos WHERE id = $1`, id), scanCase)
	if err != nil {
		return nil, fmt.Errorf("get causa: %w", err)
	}
	return c, nil
}

func (r *CaseRepo) GetByNumero(ctx context.Context, numero string) (*entity.Case, error) {
	c, err := one(r.q.QueryRow(ctx, `SELECT `+caseColumns+` FROM causas_processos WHERE numero = $1`, numero), scanCase)
	if err != nil {
		return nil, fmt.Errorf("get causa by numero: %w", err)
	}
	return c, nil
}

// List con filter.OfficeID = 0 devuelve todas las causas.
func (r *CaseRepo) List(ctx context.Context, filter repository.CaseFilter) ([]*entity.Case, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+caseColumns+` FROM causas_processos
		 WHERE ($1::bigint = 0 OR escritorio_id = $1)
		 ORDER BY id`, filter.OfficeID)
	if err != nil {
		return nil, fmt.Errorf("list causas: %w", err)
	}
	return collect(rows, scanCase)
}

// SumValor suma valor ignorando nulos; sin causas => 0.
func (r *CaseRepo) SumValor(ctx context.Context, filter repository.CaseFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0) FROM causas_processos
		 WHERE ($1::bigint = 0 OR escritorio_id = $1)`, filter.OfficeID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum valor causas: %w", err)
	}
	return total, nil
}

func (r *CaseRepo) Update(ctx context.Context, c *entity.Case) error {
	query := `
		UPDATE causas_processos
		   SET numero = $2, descricao = $3, status = $4, cliente_id = $5, advogado_id = $6,
		       escritorio_id = $7, especialidade_id = $8, data_distribuicao = $9, valor = $10
		 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Numero, c.Descricao, c.Status, c.ClienteID, c.AdvogadoID,
		c.EscritorioID, c.EspecialidadeID, c.DataDistribuicao, c.Valor)
	if err != nil {
		return fmt.Errorf("update causa: %w", mapWriteErr(err, duplicateNumero(c)))
	}
	return affected(tag, "causa")
}

func (r *CaseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM causas_processos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete causa: %w", err)
	}
	return affected(tag, "causa")
}
