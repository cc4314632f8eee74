package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo tabla auditoria, solo inserción.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el repositorio de auditoría.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func (r *AuditRepo) Append(ctx context.Context, rec *entity.AuditRecord) error {
	query := `
		INSERT INTO auditoria (entidade, entidade_id, acao, quem, quando, diff)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, rec.Entidade, rec.EntidadeID, rec.Acao, rec.Quem, rec.Quando, rec.Diff).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, entidade, entidade_id, acao, quem, quando, diff
		  FROM auditoria
		 ORDER BY id DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.AuditRecord, error) {
		var a entity.AuditRecord
		if err := row.Scan(&a.ID, &a.Entidade, &a.EntidadeID, &a.Acao, &a.Quem, &a.Quando, &a.Diff); err != nil {
			return nil, err
		}
		return &a, nil
	})
}
