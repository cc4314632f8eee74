package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Juridico-api/internal/application/dto"
	"github.com/jhoicas/Juridico-api/internal/domain"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/normalize"
	"github.com/jhoicas/Juridico-api/pkg/password"
)

// UserUseCase cuentas del sistema y sus vínculos con escritorios.
type UserUseCase struct {
	Deps
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(d Deps) *UserUseCase {
	return &UserUseCase{Deps: d.withDefaults()}
}

// Create crea el usuario con la senha hasheada (bcrypt). El username se
// guarda en mayúsculas; email, senha y permissoes se guardan tal cual.
func (uc *UserUseCase) Create(ctx context.Context, actor string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	user := &entity.User{
		Username:   normalize.Upper(in.Username),
		Nome:       normalize.Upper(in.Nome),
		Email:      normalize.Email(in.Email),
		Role:       normalize.Upper(in.Role),
		Permissoes: in.Permissoes,
		AdvogadoID: in.AdvogadoID,
	}
	if in.Senha != "" {
		hash, err := password.Hash(in.Senha)
		if err != nil {
			return nil, fmt.Errorf("usuario: hashear senha: %w", err)
		}
		user.Senha = hash
	}
	desired := in.EscritoriosIDs
	if desired == nil {
		desired = []int64{}
	}
	var resp *dto.UserResponse
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		if err := ensureLawyer(ctx, s, user.AdvogadoID); err != nil {
			return err
		}
		if err := s.Users().Create(ctx, user); err != nil {
			return err
		}
		ids, err := applyOffices(ctx, s, s.UserOffices(), user.ID, &desired)
		if err != nil {
			return err
		}
		after := user.Snapshot()
		after["escritorios_ids"] = ids
		if err := uc.Recorder.Created(ctx, s.Audit(), entity.EntityUsers, user.ID, actor, after); err != nil {
			return err
		}
		resp, err = uc.describe(ctx, s, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.Store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("usuário")
	}
	return uc.describe(ctx, uc.Store, user)
}

// List lista usuarios con sus escritorios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.Store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		resp, err := uc.describe(ctx, uc.Store, u)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// Update aplica los campos enviados. Una senha nueva se rehashea y nunca
// aparece en la auditoría.
func (uc *UserUseCase) Update(ctx context.Context, actor string, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.Invalid(err)
	}
	var hash string
	if in.Senha != nil {
		var err error
		if hash, err = password.Hash(*in.Senha); err != nil {
			return nil, fmt.Errorf("usuario: hashear senha: %w", err)
		}
	}
	var resp *dto.UserResponse
	err := uc.Tx.Run(ctx, func(s repository.Store) error {
		user, err := s.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound("usuário")
		}
		before := user.Snapshot()
		ch := changes{}
		setString(&user.Username, in.Username, "username", normalize.Upper, ch)
		setString(&user.Nome, in.Nome, "nome", normalize.Upper, ch)
		setString(&user.Email, in.Email, "email", normalize.Email, ch)
		setString(&user.Role, in.Role, "role", normalize.Upper, ch)
		if in.Permissoes != nil {
			v := *in.Permissoes
			user.Permissoes = &v
			ch["permissoes"] = v
		}
		setID(&user.AdvogadoID, in.AdvogadoID, "advogado_id", ch)
		if hash != "" {
			user.Senha = hash
		}
		if err := ensureLawyer(ctx, s, user.AdvogadoID); err != nil {
			return err
		}
		if err := s.Users().Update(ctx, user); err != nil {
			return err
		}
		if in.EscritoriosIDs != nil {
			current, err := s.UserOffices().MemberIDs(ctx, id)
			if err != nil {
				return err
			}
			before["escritorios_ids"] = current
			ids, err := applyOffices(ctx, s, s.UserOffices(), id, in.EscritoriosIDs)
			if err != nil {
				return err
			}
			ch["escritorios_ids"] = ids
		}
		if err := uc.Recorder.Updated(ctx, s.Audit(), entity.EntityUsers, id, actor, before, ch); err != nil {
			return err
		}
		resp, err = uc.describe(ctx, s, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete borra el usuario.
func (uc *UserUseCase) Delete(ctx context.Context, actor string, id int64) error {
	return uc.Tx.Run(ctx, func(s repository.Store) error {
		user, err := s.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NotFound("usuário")
		}
		if err := s.Users().Delete(ctx, id); err != nil {
			return err
		}
		return uc.Recorder.Deleted(ctx, s.Audit(), entity.EntityUsers, id, actor, user.Snapshot())
	})
}

func (uc *UserUseCase) describe(ctx context.Context, s repository.Store, u *entity.User) (*dto.UserResponse, error) {
	ids, refs, err := linkedOffices(ctx, s, s.UserOffices(), u.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Nome:           u.Nome,
		Email:          u.Email,
		Role:           u.Role,
		Permissoes:     u.Permissoes,
		AdvogadoID:     u.AdvogadoID,
		EscritoriosIDs: ids,
		Escritorios:    refs,
	}, nil
}

func ensureLawyer(ctx context.Context, s repository.Store, id *int64) error {
	if id == nil {
		return nil
	}
	l, err := s.Lawyers().GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.Errorf(domain.ErrInvalidInput, "advogado %d não encontrado", *id)
	}
	return nil
}
