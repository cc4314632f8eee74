package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/audit"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

// AuditUseCase lectura del registro de auditoría.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// ListRecent devuelve los registros más recientes primero; limit se acota a (0, 200].
func (uc *AuditUseCase) ListRecent(ctx context.Context, limit int) ([]dto.AuditResponse, error) {
	list, err := uc.repo.ListRecent(ctx, audit.ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.AuditResponse{
			ID:         r.ID,
			Entidade:   r.Entidade,
			EntidadeID: r.EntidadeID,
			Acao:       r.Acao,
			Quem:       r.Quem,
			Quando:     r.Quando,
			Diff:       r.Diff,
		})
	}
	return items, nil
}
