package usecase

import (
	"context"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

// ClientUseCase aplica reglas de negocio para clientes.
type ClientUseCase struct {
	Deps
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(d Deps) *ClientUseCase {
	return &ClientUseCase{Deps: d.withDefaults()}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, actor string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	client := &entity.Client{
		Nome:     normalize.Upper(in.Nome),
		CPFCNPJ:  normalize.Upper(in.CPFCNPJ),
		Email:    normalize.Email(in.Email),
		Telefone: normalize.Upper(in.Telefone),
	}
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := s.Clients().Create(ctx, client); err != nil {
			return err
		}
		return uc.Recorder.Created(ctx, s.Audit(), entity.EntityClients, client.ID, actor, client.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.Store.Clients().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("cliente")
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.Store.Clients().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Update aplica solo los campos enviados.
func (uc *ClientUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var out *entity.Client
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		client, err := s.Clients().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NotFound("cliente")
		}
		before := client.Snapshot()
		ch := changes{}
		setString(&client.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&client.CPFCNPJ, in.CPFCNPJ, "cpf_cnpj", normalize.Upper, ch)
		setString(&client.Email, in.Email, "email", normalize.Email, ch)
		setString(&client.Telefone, in.Telefone, "telefone", normalize.Upper, ch)
		if err := s.Clients().Update(ctx, client); err != nil {
			return err
		}
		out = client
		return uc.Recorder.Updated(ctx, s.Audit(), entity.EntityClients, id, actor, before, ch)
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(out), nil
}

// Delete borra el cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		client, err := s.Clients().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.NotFound("cliente")
		}
		if err := s.Clients().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityClients, id, actor, client.Snapshot())
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		CPFCNPJ:  c.CPFCNPJ,
		Email:    c.Email,
		Telefone: c.Telefone,
	}
}
