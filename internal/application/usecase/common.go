package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Juridico-api/internal/application/audit"
	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/application/membership"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

// Caller quien ejecuta la operación: nombre registrado en auditoría y
// escritorio que acota las lecturas de causas (0 = sin restricción).
type Caller struct {
	Actor    string
	OfficeID int64
}

// Scoped indica si el llamador está acotado a un escritorio.
func (c Caller) Scoped() bool { return c.OfficeID > 0 }

// Deps dependencias comunes de los casos de uso CRUD.
type Deps struct {
	Store    repository.Store    // lecturas fuera de transacción
	Tx       repository.TxRunner // mutaciones + auditoría en una misma transacción
	Recorder *audit.Recorder
	Log      *logger.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Recorder == nil {
		d.Recorder = audit.NewRecorder(nil)
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// changes campos efectivamente escritos en una actualización parcial.
type changes map[string]any

func setString(dst *string, v *string, key string, norm func(string) string, ch changes) {
	if v == nil {
		return
	}
	*dst = norm(*v)
	ch[key] = *dst
}

// setID aplica una referencia opcional; null explícito la limpia y queda como
// null en la auditoría.
func setID(dst **int64, v dto.Optional[int64], key string, ch changes) {
	if !v.Set {
		return
	}
	if v.Value == nil {
		*dst = nil
		ch[key] = nil
		return
	}
	id := *v.Value
	*dst = &id
	ch[key] = id
}

// ensureOffices verifica que todos los escritorios existan.
func ensureOffices(ctx context.Context, s repository.Store, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.Offices().ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	have := make(map[int64]struct{}, len(found))
	for _, o := range found {
		have[o.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return domain.Errorf(domain.ErrInvalidInput, "escritório %d não encontrado", id)
		}
	}
	return nil
}

// linkedOffices devuelve ids y referencias de los escritorios vinculados a ownerID.
func linkedOffices(ctx context.Context, s repository.Store, links repository.MembershipRepository, ownerID int64) ([]int64, []dto.OfficeRef, error) {
	ids, err := links.MemberIDs(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("listar escritórios de %d: %w", ownerID, err)
	}
	refs := make([]dto.OfficeRef, 0, len(ids))
	if len(ids) == 0 {
		return []int64{}, refs, nil
	}
	offices, err := s.Offices().ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for _, o := range offices {
		refs = append(refs, dto.OfficeRef{ID: o.ID, Nome: o.Nome})
	}
	return ids, refs, nil
}

// applyOffices concilia los vínculos y devuelve el conjunto deseado normalizado
// (nil si el campo no fue enviado).
func applyOffices(ctx context.Context, s repository.Store, links repository.MembershipRepository, ownerID int64, desired *[]int64) ([]int64, error) {
	if desired == nil {
		return nil, nil
	}
	ids := membership.Unique(*desired)
	if err := ensureOffices(ctx, s, ids); err != nil {
		return nil, err
	}
	if _, err := membership.Apply(ctx, links, ownerID, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
