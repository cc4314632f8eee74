package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// CaseFilter acota listados de causas. OfficeID 0 = todos los escritorios.
type CaseFilter struct {
	OfficeID int64
}

// CaseRepository define el puerto de persistencia para Case.
// Create/Update devuelven domain.ErrDuplicate si el número ya existe.
type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	GetByID(ctx context.Context, id int64) (*entity.Case, error)
	GetByNumero(ctx context.Context, numero string) (*entity.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]*entity.Case, error)
	SumValor(ctx context.Context, filter CaseFilter) (decimal.Decimal, error)
	Update(ctx context.Context, c *entity.Case) error
	Delete(ctx context.Context, id int64) error
}
