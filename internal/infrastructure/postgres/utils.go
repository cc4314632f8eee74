package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Juridico-api/internal/domain"
)

// Querier lo común entre *pgxpool.Pool y pgx.Tx: los repos no saben si
// corren dentro de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation 23503: referencia a una fila inexistente.
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// mapWriteErr traduce errores de escritura a errores de dominio.
func mapWriteErr(err error, duplicate string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.Errorf(domain.ErrDuplicate, "%s", duplicate)
	case isForeignKeyViolation(err):
		return domain.Errorf(domain.ErrInvalidInput, "referência inexistente")
	}
	return err
}

// affected devuelve domain.ErrNotFound si el comando no tocó ninguna fila.
func affected(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return domain.NotFound(what)
	}
	return nil
}

// collect recorre rows aplicando scan a cada fila.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// one escanea una fila con scan: sin filas => (nil, nil).
func one[T any](row pgx.Row, scan func(pgx.Row) (*T, error)) (*T, error) {
	item, err := scan(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}
