package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// OfficeRepository define el puerto de persistencia para Office.
// GetByID devuelve (nil, nil) si no existe.
type OfficeRepository interface {
	Create(ctx context.Context, office *entity.Office) error
	GetByID(ctx context.Context, id int64) (*entity.Office, error)
	GetByName(ctx context.Context, nome string) (*entity.Office, error)
	List(ctx context.Context) ([]*entity.Office, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Office, error)
	Update(ctx context.Context, office *entity.Office) error
	Delete(ctx context.Context, id int64) error
}
