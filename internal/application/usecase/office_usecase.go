package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// OfficeUseCase aplica reglas de negocio para escritorios.
type OfficeUseCase struct {
	Deps
}

// NewOfficeUseCase construye el caso de uso.
func NewOfficeUseCase(d Deps) *OfficeUseCase {
	return &OfficeUseCase{Deps: d.withDefaults()}
}

// Create crea un escritorio y registra la auditoría en la misma transacción.
func (uc *OfficeUseCase) Create(ctx context.Context, actor string, in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	office := &entity.Office{
		Nome:     normalize.Upper(in.Nome),
		CNPJ:     normalize.Upper(in.CNPJ),
		Email:    normalize.Email(in.Email),
		Telefone: normalize.Upper(in.Telefone),
	}
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := s.Offices().Create(ctx, office); err != nil {
			return err
		}
		return uc.Recorder.Created(ctx, s.Audit(), entity.EntityOffices, office.ID, actor, office.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// GetByID obtiene un escritorio por ID.
func (uc *OfficeUseCase) GetByID(ctx context.Context, id int64) (*dto.OfficeResponse, error) {
	office, err := uc.Store.Offices().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.NotFound("escritório")
	}
	return toOfficeResponse(office), nil
}

// List lista todos los escritorios.
func (uc *OfficeUseCase) List(ctx context.Context) ([]dto.OfficeResponse, error) {
	list, err := uc.Store.Offices().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfficeResponse(o))
	}
	return items, nil
}

// Update aplica solo los campos enviados.
func (uc *OfficeUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateOfficeRequest) (*dto.OfficeResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var out *entity.Office
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		office, err := s.Offices().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if office == nil {
			return domain.NotFound("escritório")
		}
		before := office.Snapshot()
		ch := changes{}
		setString(&office.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&office.CNPJ, in.CNPJ, "cnpj", normalize.Upper, ch)
		setString(&office.Email, in.Email, "email", normalize.Email, ch)
		setString(&office.Telefone, in.Telefone, "telefone", normalize.Upper, ch)
		if err := s.Offices().Update(ctx, office); err != nil {
			return err
		}
		out = office
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntityOffices, id, actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toOfficeResponse(out), nil
}

// Delete borra el escritorio; la auditoría guarda los últimos valores.
func (uc *OfficeUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		office, err := s.Offices().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if office == nil {
			return domain.NotFound("escritório")
		}
		if err := s.Offices().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityOffices, id, actor, office.Snapshot())
	})
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	if o == nil {
		return nil
	}
	return &dto.OfficeResponse{
		ID:       o.ID,
		Nome:     o.Nome,
		CNPJ:     o.CNPJ,
		Email:    o.Email,
		Telefone: o.Telefone,
	}
}
