package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// SpecialtyRepository define el puerto de persistencia para Specialty.
type SpecialtyRepository interface {
	Create(ctx context.Context, s *entity.Specialty) error
	GetByID(ctx context.Context, id int64) (*entity.Specialty, error)
	GetByName(ctx context.Context, nome string) (*entity.Specialty, error)
	List(ctx context.Context) ([]*entity.Specialty, error)
	Update(ctx context.Context, s *entity.Specialty) error
	Delete(ctx context.Context, id int64) error
}
