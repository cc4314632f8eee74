package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// CatalogRepository puerto común para catálogos nombre/descripción (perfiles, permisos).
type CatalogRepository interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error)
	GetByName(ctx context.Context, nome string) (*entity.CatalogItem, error)
	List(ctx context.Context) ([]*entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) error
	Delete(ctx context.Context, id int64) error
}
