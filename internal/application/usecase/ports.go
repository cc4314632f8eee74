package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
)

// CaseSheet datos de una causa con los nombres de sus referencias resueltos.
type CaseSheet struct {
	Case          *entity.Case
	Cliente       *entity.Client    // nil si la causa no tiene cliente
	Advogado      *entity.Lawyer    // nil si no tiene abogado
	Escritorio    *entity.Office    // nil si no tiene escritorio
	Especialidade *entity.Specialty // nil si no tiene especialidad
}

// CaseSheetGenerator genera la ficha PDF de una causa.
type CaseSheetGenerator interface {
	GenerateCaseSheet(ctx context.Context, sheet CaseSheet) ([]byte, error)
}
