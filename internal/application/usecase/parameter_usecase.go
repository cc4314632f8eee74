package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// ParameterUseCase parámetros clave/valor.
type ParameterUseCase struct {
	Deps
}

// NewParameterUseCase construye el caso de uso.
func NewParameterUseCase(d Deps) *ParameterUseCase {
	return &ParameterUseCase{Deps: d.withDefaults()}
}

// List lista todos los parámetros.
func (uc *ParameterUseCase) List(ctx context.Context) ([]dto.ParameterResponse, error) {
	list, err := uc.Store.Parameters().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ParameterResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toParameterResponse(p))
	}
	return items, nil
}

// Upsert crea el parámetro o, si la chave ya existe, actualiza su valor.
// La auditoría registra create o update según el caso.
func (uc *ParameterUseCase) Upsert(ctx context.Context, actor string, in dto.UpsertParameterRequest) (*dto.ParameterResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	chave := normalize.Upper(in.Chave)
	valor := normalize.Upper(in.Valor)
	var out *entity.Parameter
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		p, err := s.Parameters().GetByKey(ctx, chave)
		if err != nil {
			return err
		}
		if p == nil {
			p = &entity.Parameter{Chave: chave, Valor: valor}
			if err := s.Parameters().Create(ctx, p); err != nil {
				return err
			}
			out = p
			return uc.Recorder.Created(ctx, s.Audit(), entity.EntityParameters, p.ID, actor, p.Snapshot())
		}
		before := p.Snapshot()
		p.Valor = valor
		if err := s.Parameters().Update(ctx, p); err != nil {
			return err
		}
		out = p
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntityParameters, p.ID, actor, before, p.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toParameterResponse(out), nil
}

// Update actualiza chave y/o valor por id.
func (uc *ParameterUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateParameterRequest) (*dto.ParameterResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var out *entity.Parameter
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		p, err := s.Parameters().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFound("parâmetro")
		}
		before := p.Snapshot()
		ch := changes{}
		setString(&p.Chave, in.Chave, "chave", normalize.Upper, ch)
		setString(&p.Valor, in.Valor, "valor", normalize.Upper, ch)
		if err := s.Parameters().Update(ctx, p); err != nil {
			return err
		}
		out = p
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntityParameters, id, actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toParameterResponse(out), nil
}

// Delete borra el parámetro.
func (uc *ParameterUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		p, err := s.Parameters().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFound("parâmetro")
		}
		if err := s.Parameters().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityParameters, id, actor, p.Snapshot())
	})
}

func toParameterResponse(p *entity.Parameter) *dto.ParameterResponse {
	return &dto.ParameterResponse{ID: p.ID, Chave: p.Chave, Valor: p.Valor}
}
