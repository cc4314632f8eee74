package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, nome, email, role, senha, permissoes, advogado_id`

// UserRepo persistencia de usuarios. senha guarda el hash (o texto heredado).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Nome, &u.Email, &u.Role, &u.Senha, &u.Permissoes, &u.AdvogadoID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func duplicateUsername(u *entity.User) string {
	return fmt.Sprintf("usuário %s já existe", u.Username)
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (username, nome, email, role, senha, permissoes, advogado_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, u.Username, u.Nome, u.Email, u.Role, u.Senha, u.Permissoes, u.AdvogadoID).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", mapWriteErr(err, duplicateUsername(u)))
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := one(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id), scanUser)
	if err != nil {
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByUsername compara sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := one(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE upper(username) = upper($1)`, username), scanUser)
	if err != nil {
		return nil, fmt.Errorf("get usuario by username: %w", err)
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	return collect(rows, scanUser)
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE usuarios
		   SET username = $2, nome = $3, email = $4, role = $5, senha = $6, permissoes = $7, advogado_id = $8
		 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, u.ID, u.Username, u.Nome, u.Email, u.Role, u.Senha, u.Permissoes, u.AdvogadoID)
	if err != nil {
		return fmt.Errorf("update usuario: %w", mapWriteErr(err, duplicateUsername(u)))
	}
	return affected(tag, "usuário")
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return affected(tag, "usuário")
}
