package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// LawyerUseCase abogados y sus vínculos con escritorios.
type LawyerUseCase struct {
	Deps
}

// NewLawyerUseCase construye el caso de uso.
func NewLawyerUseCase(d Deps) *LawyerUseCase {
	return &LawyerUseCase{Deps: d.withDefaults()}
}

// Create crea el abogado y sus vínculos; la auditoría incluye escritorios_ids.
func (uc *LawyerUseCase) Create(ctx context.Context, actor string, in dto.CreateLawyerRequest) (*dto.LawyerResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	lawyer := &entity.Lawyer{
		Nome:            normalize.Upper(in.Nome),
		OAB:             normalize.Upper(in.OAB),
		Email:           normalize.Email(in.Email),
		Telefone:        normalize.Upper(in.Telefone),
		EspecialidadeID: in.EspecialidadeID,
	}
	desired := in.EscritoriosIDs
	if desired == nil {
		desired = []int64{}
	}
	var resp *dto.LawyerResponse
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := ensureSpecialty(ctx, s, lawyer.EspecialidadeID); err != nil {
			return err
		}
		if err := s.Lawyers().Create(ctx, lawyer); err != nil {
			return err
		}
		ids, err := applyOffices(ctx, s, s.LawyerOffices(), lawyer.ID, &desired)
		if err != nil {
			return err
		}
		after := lawyer.Snapshot()
		after["escritorios_ids"] = ids
		if err := uc.Recorder.Created(ctx, s.Audit(), entity.EntityLawyers, lawyer.ID, actor, after); err != nil {
			return err
		}
		resp, err = uc.describe(ctx, s, lawyer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByID obtiene un abogado con sus escritorios.
func (uc *LawyerUseCase) GetByID(ctx context.Context, id int64) (*dto.LawyerResponse, error) {
	lawyer, err := uc.Store.Lawyers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, domain.NotFound("advogado")
	}
	return uc.describe(ctx, uc.Store, lawyer)
}

// List lista abogados con sus escritorios.
func (uc *LawyerUseCase) List(ctx context.Context) ([]dto.LawyerResponse, error) {
	list, err := uc.Store.Lawyers().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LawyerResponse, 0, len(list))
	for _, l := range list {
		resp, err := uc.describe(ctx, uc.Store, l)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Offices devuelve los escritorios vinculados al abogado.
func (uc *LawyerUseCase) Offices(ctx context.Context, id int64) ([]dto.OfficeResponse, error) {
	lawyer, err := uc.Store.Lawyers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, domain.NotFound("advogado")
	}
	ids, err := uc.Store.LawyerOffices().MemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	offices, err := uc.Store.Offices().ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range offices {
		items = append(items, *toOfficeResponse(o))
	}
	return items, nil
}

// Update aplica los campos enviados y, si llega escritorios_ids, concilia los vínculos.
func (uc *LawyerUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateLawyerRequest) (*dto.LawyerResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var resp *dto.LawyerResponse
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		lawyer, err := s.Lawyers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if lawyer == nil {
			return domain.NotFound("advogado")
		}
		before := lawyer.Snapshot()
		ch := changes{}
		setString(&lawyer.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&lawyer.OAB, in.OAB, "oab", normalize.Upper, ch)
		setString(&lawyer.Email, in.Email, "email", normalize.Email, ch)
		setString(&lawyer.Telefone, in.Telefone, "telefone", normalize.Upper, ch)
		setID(&lawyer.EspecialidadeID, in.EspecialidadeID, "especialidade_id", ch)
		if err := ensureSpecialty(ctx, s, lawyer.EspecialidadeID); err != nil {
			return err
		}
		if err := s.Lawyers().Update(ctx, lawyer); err != nil {
			return err
		}
		if in.EscritoriosIDs != nil {
			current, err := s.LawyerOffices().MemberIDs(ctx, id)
			if err != nil {
				return err
			}
			before["escritorios_ids"] = current
			ids, err := applyOffices(ctx, s, s.LawyerOffices(), id, in.EscritoriosIDs)
			if err != nil {
				return err
			}
			ch["escritorios_ids"] = ids
		}
		if err := uc.Recorder.Updated(ctx, s.Audit(), entity.EntityLawyers, id, actor, before, ch); err != nil {
			return err
		}
		resp, err = uc.describe(ctx, s, lawyer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete borra el abogado; los vínculos caen en cascada.
func (uc *LawyerUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		lawyer, err := s.Lawyers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if lawyer == nil {
			return domain.NotFound("advogado")
		}
		if err := s.Lawyers().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityLawyers, id, actor, lawyer.Snapshot())
	})
}

func (uc *LawyerUseCase) describe(ctx context.Context, s repository.Store, l *entity.Lawyer) (*dto.LawyerResponse, error) {
	ids, refs, err := linkedOffices(ctx, s, s.LawyerOffices(), l.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LawyerResponse{
		ID:              l.ID,
		Nome:            l.Nome,
		OAB:             l.OAB,
		Email:           l.Email,
		Telefone:        l.Telefone,
		EspecialidadeID: l.EspecialidadeID,
		EscritoriosIDs:  ids,
		Escritorios:     refs,
	}, nil
}

func ensureSpecialty(ctx context.Context, s repository.Store, id *int64) error {
	if id == nil {
		return nil
	}
	sp, err := s.Specialties().GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if sp == nil {
		return domain.Errorf(domain.ErrInvalidInput, "especialidade %d não encontrada", *id)
	}
	return nil
}
