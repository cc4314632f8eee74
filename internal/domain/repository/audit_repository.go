package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// AuditRepository registro de auditoría de solo-anexar: no hay Update ni Delete.
type AuditRepository interface {
	Append(ctx context.Context, rec *entity.AuditRecord) error
	// ListRecent devuelve los últimos limit registros, del más nuevo al más antiguo.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditRecord, error)
}
