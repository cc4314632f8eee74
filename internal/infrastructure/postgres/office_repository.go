package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

// Asegura que OfficeRepo implementa repository.OfficeRepository.
var _ repository.OfficeRepository = (*OfficeRepo)(nil)

const officeColumns = `id, nome, cnpj, email, telefone`

// OfficeRepo implementación del puerto OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	q Querier
}

// NewOfficeRepository construye el adaptador de persistencia para escritorios.
func NewOfficeRepository(q Querier) *OfficeRepo {
	return &OfficeRepo{q: q}
}

func scanOffice(row pgx.Row) (*entity.Office, error) {
	var o entity.Office
	if err := row.Scan(&o.ID, &o.Nome, &o.CNPJ, &o.Email, &o.Telefone); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste un escritorio y asigna su ID.
func (r *OfficeRepo) Create(ctx context.Context, o *entity.Office) error {
	query := `
		INSERT INTO escritorios (nome, cnpj, email, telefone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, o.Nome, o.CNPJ, o.Email, o.Telefone).Scan(&o.ID); err != nil {
		return fmt.Errorf("insert escritorio: %w", mapWriteErr(err, "escritório duplicado"))
	}
	return nil
}

// GetByID obtiene un escritorio por ID.
func (r *OfficeRepo) GetByID(ctx context.Context, id int64) (*entity.Office, error) {
	o, err := one(r.q.QueryRow(ctx, `SELECT `+officeColumns+` FROM escritorios WHERE id = $1`, id), scanOffice)
	if err != nil {
		return nil, fmt.Errorf("get escritorio: %w", err)
	}
	return o, nil
}

// GetByName obtiene el primer escritorio con ese nombre.
func (r *OfficeRepo) GetByName(ctx context.Context, nome string) (*entity.Office, error) {
	o, err := one(r.q.QueryRow(ctx,
		`SELECT `+officeColumns+` FROM escritorios WHERE nome = $1 ORDER BY id LIMIT 1`, nome), scanOffice)
	if err != nil {
		return nil, fmt.Errorf("get escritorio by nome: %w", err)
	}
	return o, nil
}

// List devuelve todos los escritorios ordenados por ID.
func (r *OfficeRepo) List(ctx context.Context) ([]*entity.Office, error) {
	rows, err := r.q.Query(ctx, `SELECT `+officeColumns+` FROM escritorios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list escritorios: %w", err)
	}
	return collect(rows, scanOffice)
}

// ListByIDs devuelve los escritorios cuyos IDs están en ids.
func (r *OfficeRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Office, error) {
	rows, err := r.q.Query(ctx, `SELECT `+officeColumns+` FROM escritorios WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list escritorios by ids: %w", err)
	}
	return collect(rows, scanOffice)
}

// Update actualiza un escritorio existente.
func (r *OfficeRepo) Update(ctx context.Context, o *entity.Office) error {
	query := `
		UPDATE escritorios SET nome = $2, cnpj = $3, email = $4, telefone = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Nome, o.CNPJ, o.Email, o.Telefone)
	if err != nil {
		return fmt.Errorf("update escritorio: %w", mapWriteErr(err, "escritório duplicado"))
	}
	return affected(tag, "escritório")
}

// Delete elimina un escritorio; sus vínculos caen en cascada.
func (r *OfficeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM escritorios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete escritorio: %w", err)
	}
	return affected(tag, "escritório")
}
