package repository

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// ParameterRepository define el puerto de persistencia para Parameter.
type ParameterRepository interface {
	Create(ctx context.Context, p *entity.Parameter) error
	GetByID(ctx context.Context, id int64) (*entity.Parameter, error)
	GetByKey(ctx context.Context, chave string) (*entity.Parameter, error)
	List(ctx context.Context) ([]*entity.Parameter, error)
	Update(ctx context.Context, p *entity.Parameter) error
	Delete(ctx context.Context, id int64) error
}
