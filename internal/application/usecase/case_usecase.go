package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/coerce"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// CaseUseCase causas/procesos. Las lecturas se acotan al escritorio del llamador.
type CaseUseCase struct {
	Deps
	sheets CaseSheetGenerator
}

// NewCaseUseCase construye el caso de uso. sheets puede ser nil si no se expone el PDF.
func NewCaseUseCase(d Deps, sheets CaseSheetGenerator) *CaseUseCase {
	return &CaseUseCase{Deps: d.withDefaults(), sheets: sheets}
}

// Create crea una causa. Un llamador acotado solo crea causas de su escritorio;
// si no indica escritorio_id se usa el de la sesión.
func (uc *CaseUseCase) Create(ctx context.Context, caller Caller, in dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	c := &entity.Case{
		Numero:          normalize.Upper(in.Numero),
		Descricao:       normalize.Upper(in.Descricao),
		Status:          normalize.Upper(in.Status),
		ClienteID:       in.ClienteID,
		AdvogadoID:      in.AdvogadoID,
		EscritorioID:    in.EscritorioID,
		EspecialidadeID: in.EspecialidadeID,
	}
	var err error
	if c.DataDistribuicao, err = parseDate(in.DataDistribuicao); err != nil {
		return nil, err
	}
	if c.Valor, err = parseAmount(in.Valor); err != nil {
		return nil, err
	}
	if caller.Scoped() {
		if c.EscritorioID == nil {
			office := caller.OfficeID
			c.EscritorioID = &office
		} else if *c.EscritorioID != caller.OfficeID {
			return nil, outOfScope(caller)
		}
	}
	err = uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := ensureCaseRefs(ctx, s, c); err != nil {
			return err
		}
		if err := s.Cases().Create(ctx, c); err != nil {
			return err
		}
		return uc.Recorder.Created(ctx, s.Audit(), entity.EntityCases, c.ID, caller.Actor, c.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toCaseResponse(c), nil
}

// GetByID obtiene una causa; fuera del escritorio del llamador => ErrForbidden.
func (uc *CaseUseCase) GetByID(ctx context.Context, caller Caller, id int64) (*dto.CaseResponse, error) {
	c, err := uc.load(ctx, uc.Store, caller, id)
	if err != nil {
		return nil, err
	}
	return toCaseResponse(c), nil
}

// List lista las causas visibles para el llamador.
func (uc *CaseUseCase) List(ctx context.Context, caller Caller) ([]dto.CaseResponse, error) {
	list, err := uc.Store.Cases().List(ctx, repository.CaseFilter{OfficeID: caller.OfficeID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CaseResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCaseResponse(c))
	}
	return items, nil
}

// Sum suma el valor de las causas visibles para el llamador.
func (uc *CaseUseCase) Sum(ctx context.Context, caller Caller) (*dto.CaseSumResponse, error) {
	total, err := uc.Store.Cases().SumValor(ctx, repository.CaseFilter{OfficeID: caller.OfficeID})
	if err != nil {
		return nil, err
	}
	return &dto.CaseSumResponse{Total: json.Number(total.StringFixed(2))}, nil
}

// Update aplica los campos enviados. Fechas y valores inválidos abortan la operación.
func (uc *CaseUseCase) Update(ctx context.Context, caller Caller, id int64, in dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	date, err := parseDate(in.DataDistribuicao)
	if err != nil {
		return nil, err
	}
	valor, err := parseAmount(in.Valor)
	if err != nil {
		return nil, err
	}
	if caller.Scoped() && in.EscritorioID.Set && (in.EscritorioID.Value == nil || *in.EscritorioID.Value != caller.OfficeID) {
		return nil, outOfScope(caller)
	}
	var out *entity.Case
	err = uc.Tx.Run(ctx, func(s repository.Store) error {
		c, err := uc.load(ctx, s, caller, id)
		if err != nil {
			return err
		}
		before := c.Snapshot()
		ch := changes{}
		setString(&c.Numero, in.Numero, "numero", normalize.Upper, ch)
		setString(&c.Descricao, in.Descricao, "descricao", normalize.Upper, ch)
		setString(&c.Status, in.Status, "status", normalize.Upper, ch)
		setID(&c.ClienteID, in.ClienteID, "cliente_id", ch)
		setID(&c.AdvogadoID, in.AdvogadoID, "advogado_id", ch)
		setID(&c.EscritorioID, in.EscritorioID, "escritorio_id", ch)
		setID(&c.EspecialidadeID, in.EspecialidadeID, "especialidade_id", ch)
		if date != nil {
			c.DataDistribuicao = date
			ch["dataDistribuicao"] = entity.FormatDate(date)
		}
		if valor != nil {
			c.Valor = valor
			ch["valor"] = entity.FormatMoney(valor)
		}
		if err := ensureCaseRefs(ctx, s, c); err != nil {
			return err
		}
		if err := s.Cases().Update(ctx, c); err != nil {
			return err
		}
		out = c
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntityCases, id, caller.Actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toCaseResponse(out), nil
}

// Delete borra la causa.
func (uc *CaseUseCase) Delete(ctx context.Context, caller Caller, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		c, err := uc.load(ctx, s, caller, id)
		if err != nil {
			return err
		}
		if err := s.Cases().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityCases, id, caller.Actor, c.Snapshot())
	})
}

// SheetPDF genera la ficha PDF de la causa y el nombre de archivo sugerido.
func (uc *CaseUseCase) SheetPDF(ctx context.Context, caller Caller, id int64) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	c, err := uc.load(ctx, uc.Store, caller, id)
	if err != nil {
		return nil, "", err
	}
	sheet := CaseSheet{Case: c}
	if c.ClienteID != nil {
		if sheet.Cliente, err = uc.Store.Clients().GetByID(ctx, *c.ClienteID); err != nil {
			return nil, "", err
		}
	}
	if c.AdvogadoID != nil {
		if sheet.Advogado, err = uc.Store.Lawyers().GetByID(ctx, *c.AdvogadoID); err != nil {
			return nil, "", err
		}
	}
	if c.EscritorioID != nil {
		if sheet.Escritorio, err = uc.Store.Offices().GetByID(ctx, *c.EscritorioID); err != nil {
			return nil, "", err
		}
	}
	if c.EspecialidadeID != nil {
		if sheet.Especialidade, err = uc.Store.Specialties().GetByID(ctx, *c.EspecialidadeID); err != nil {
			return nil, "", err
		}
	}
	pdf, err := uc.sheets.GenerateCaseSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("causa_%d.pdf", c.ID), nil
}

// load obtiene la causa y verifica que el llamador pueda verla.
func (uc *CaseUseCase) load(ctx context.Context, s repository.Store, caller Caller, id int64) (*entity.Case, error) {
	c, err := s.Cases().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("causa")
	}
	if caller.Scoped() && !c.BelongsTo(caller.OfficeID) {
		return nil, outOfScope(caller)
	}
	return c, nil
}

func outOfScope(caller Caller) error {
	return domain.Errorf(domain.ErrForbidden, "causa fora do escritório %d", caller.OfficeID)
}

// ensureCaseRefs valida que las referencias de la causa existan.
func ensureCaseRefs(ctx context.Context, s repository.Store, c *entity.Case) error {
	if c.ClienteID != nil {
		x, err := s.Clients().GetByID(ctx, *c.ClienteID)
		if err != nil {
			return err
		}
		if x == nil {
			return domain.Errorf(domain.ErrInvalidInput, "cliente %d não encontrado", *c.ClienteID)
		}
	}
	if c.AdvogadoID != nil {
		x, err := s.Lawyers().GetByID(ctx, *c.AdvogadoID)
		if err != nil {
			return err
		}
		if x == nil {
			return domain.Errorf(domain.ErrInvalidInput, "advogado %d não encontrado", *c.AdvogadoID)
		}
	}
	if c.EscritorioID != nil {
		if err := ensureOffices(ctx, s, []int64{*c.EscritorioID}); err != nil {
			return err
		}
	}
	return ensureSpecialty(ctx, s, c.EspecialidadeID)
}

// parseDate y parseAmount tratan "" como campo no enviado.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := coerce.Date(*s)
	if err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "dataDistribuicao: %v", err)
	}
	return &t, nil
}

func parseAmount(a *dto.Amount) (*decimal.Decimal, error) {
	if a == nil || strings.TrimSpace(string(*a)) == "" {
		return nil, nil
	}
	d, err := coerce.MoneyString(string(*a))
	if err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "valor: %v", err)
	}
	return &d, nil
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	out := &dto.CaseResponse{
		ID:              c.ID,
		Numero:          c.Numero,
		Descricao:       c.Descricao,
		Status:          c.Status,
		ClienteID:       c.ClienteID,
		AdvogadoID:      c.AdvogadoID,
		EscritorioID:    c.EscritorioID,
		EspecialidadeID: c.EspecialidadeID,
	}
	if c.DataDistribuicao != nil {
		d := c.DataDistribuicao.Format(entity.DateLayout)
		out.DataDistribuicao = &d
	}
	if c.Valor != nil {
		n := json.Number(c.Valor.StringFixed(2))
		out.Valor = &n
	}
	return out
}
