package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// CatalogUseCase CRUD de un catálogo nombre/descripción (perfiles o permisos).
type CatalogUseCase struct {
	Deps
	entity string
	label  string
	repo   func(repository.Store) repository.CatalogRepository
}

// NewProfileUseCase catálogo de perfiles.
func NewProfileUseCase(d Deps) *CatalogUseCase {
	return &CatalogUseCase{
		Deps:   d.withDefaults(),
		entity: entity.EntityProfiles,
		label:  "perfil",
		repo:   repository.Store.Profiles,
	}
}

// NewPermissionUseCase catálogo de permisos.
func NewPermissionUseCase(d Deps) *CatalogUseCase {
	return &CatalogUseCase{
		Deps:   d.withDefaults(),
		entity: entity.EntityPermissions,
		label:  "permissão",
		repo:   repository.Store.Permissions,
	}
}

func (uc *CatalogUseCase) Create(ctx context.Context, actor string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	item := &entity.CatalogItem{Nome: normalize.Upper(in.Nome), Descricao: normalize.Upper(in.Descricao)}
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := uc.repo(s).Create(ctx, item); err != nil {
			return err
		}
		return uc.Recorder.Created(ctx, s.Audit(), uc.entity, item.ID, actor, item.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(item), nil
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id int64) (*dto.CatalogResponse, error) {
	item, err := uc.repo(uc.Store).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound(uc.label)
	}
	return toCatalogResponse(item), nil
}

func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.CatalogResponse, error) {
	list, err := uc.repo(uc.Store).List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCatalogResponse(it))
	}
	return items, nil
}

func (uc *CatalogUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var out *entity.CatalogItem
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		item, err := uc.repo(s).GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound(uc.label)
		}
		before := item.Snapshot()
		ch := changes{}
		setString(&item.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&item.Descricao, in.Descricao, "descricao", normalize.Upper, ch)
		if err := uc.repo(s).Update(ctx, item); err != nil {
			return err
		}
		out = item
		return uc.Recorder.Updated(ctx, s.Audit(), uc.entity, id, actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(out), nil
}

func (uc *CatalogUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		item, err := uc.repo(s).GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound(uc.label)
		}
		if err := uc.repo(s).Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), uc.entity, id, actor, item.Snapshot())
	})
}

func toCatalogResponse(c *entity.CatalogItem) *dto.CatalogResponse {
	return &dto.CatalogResponse{ID: c.ID, Nome: c.Nome, Descricao: c.Descricao}
}
