package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// SpecialtyUseCase áreas del derecho.
type SpecialtyUseCase struct {
	Deps
}

// NewSpecialtyUseCase construye el caso de uso.
func NewSpecialtyUseCase(d Deps) *SpecialtyUseCase {
	return &SpecialtyUseCase{Deps: d.withDefaults()}
}

func (uc *SpecialtyUseCase) Create(ctx context.Context, actor string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	sp := &entity.Specialty{Nome: normalize.Upper(in.Nome), Descricao: normalize.Upper(in.Descricao)}
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := s.Specialties().Create(ctx, sp); err != nil {
			return err
		}
		return uc.Recorder.Created(ctx, s.Audit(), entity.EntitySpecialties, sp.ID, actor, sp.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toSpecialtyResponse(sp), nil
}

func (uc *SpecialtyUseCase) GetByID(ctx context.Context, id int64) (*dto.CatalogResponse, error) {
	sp, err := uc.Store.Specialties().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.NotFound("especialidade")
	}
	return toSpecialtyResponse(sp), nil
}

func (uc *SpecialtyUseCase) List(ctx context.Context) ([]dto.CatalogResponse, error) {
	list, err := uc.Store.Specialties().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, *toSpecialtyResponse(sp))
	}
	return items, nil
}

func (uc *SpecialtyUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var out *entity.Specialty
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		sp, err := s.Specialties().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sp == nil {
			return domain.NotFound("especialidade")
		}
		before := sp.Snapshot()
		ch := changes{}
		setString(&sp.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&sp.Descricao, in.Descricao, "descricao", normalize.Upper, ch)
		if err := s.Specialties().Update(ctx, sp); err != nil {
			return err
		}
		out = sp
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntitySpecialties, id, actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toSpecialtyResponse(out), nil
}

func (uc *SpecialtyUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		sp, err := s.Specialties().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sp == nil {
			return domain.NotFound("especialidade")
		}
		if err := s.Specialties().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntitySpecialties, id, actor, sp.Snapshot())
	})
}

func toSpecialtyResponse(s *entity.Specialty) *dto.CatalogResponse {
	return &dto.CatalogResponse{ID: s.ID, Nome: s.Nome, Descricao: s.Descricao}
}
