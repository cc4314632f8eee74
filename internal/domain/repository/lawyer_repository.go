package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// LawyerRepository define el puerto de persistencia para Lawyer.
type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	GetByID(ctx context.Context, id int64) (*entity.Lawyer, error)
	GetByName(ctx context.Context, nome string) (*entity.Lawyer, error)
	List(ctx context.Context) ([]*entity.Lawyer, error)
	Update(ctx context.Context, lawyer *entity.Lawyer) error
	Delete(ctx context.Context, id int64) error
}
