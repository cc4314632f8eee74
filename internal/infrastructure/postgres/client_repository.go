package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, nome, cpf_cnpj, email, telefone`

// ClientRepo persistencia de clientes.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el repositorio de clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Nome, &c.CPFCNPJ, &c.Email, &c.Telefone); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clientes (nome, cpf_cnpj, email, telefone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Nome, c.CPFCNPJ, c.Email, c.Telefone).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert cliente: %w", mapWriteErr(err, "cliente duplicado"))
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := one(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id), scanClient)
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) GetByName(ctx context.Context, nome string) (*entity.Client, error) {
	c, err := one(r.q.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clientes WHERE nome = $1 ORDER BY id LIMIT 1`, nome), scanClient)
	if err != nil {
		return nil, fmt.Errorf("get cliente by nome: %w", err)
	}
	return c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return collect(rows, scanClient)
}

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clientes SET nome = $2, cpf_cnpj = $3, email = $4, telefone = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Nome, c.CPFCNPJ, c.Email, c.Telefone)
	if err != nil {
		return fmt.Errorf("update cliente: %w", mapWriteErr(err, "cliente duplicado"))
	}
	return affected(tag, "cliente")
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return affected(tag, "cliente")
}
