package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo tabla de vínculo (owner, member) con PK compuesta.
// table y las columnas son identificadores fijos del código.
type MembershipRepo struct {
	q         Querier
	table     string
	ownerCol  string
	memberCol string
}

// NewMembershipRepository construye el repositorio para la tabla de vínculo.
func NewMembershipRepository(q Querier, table, ownerCol, memberCol string) *MembershipRepo {
	return &MembershipRepo{q: q, table: table, ownerCol: ownerCol, memberCol: memberCol}
}

// MemberIDs devuelve los miembros del owner en orden ascendente.
func (r *MembershipRepo) MemberIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`, r.memberCol, r.table, r.ownerCol, r.memberCol)
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *MembershipRepo) Exists(ctx context.Context, ownerID, memberID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`, r.table, r.ownerCol, r.memberCol)
	var ok bool
	if err := r.q.QueryRow(ctx, query, ownerID, memberID).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists %s: %w", r.table, err)
	}
	return ok, nil
}

// Add inserta el par; un par repetido devuelve domain.ErrDuplicate.
func (r *MembershipRepo) Add(ctx context.Context, ownerID, memberID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, r.table, r.ownerCol, r.memberCol)
	if _, err := r.q.Exec(ctx, query, ownerID, memberID); err != nil {
		return fmt.Errorf("insert %s: %w", r.table, mapWriteErr(err, fmt.Sprintf("vínculo %d↔%d já existe", ownerID, memberID)))
	}
	return nil
}

// Remove borra el par; si no existe no hace nada.
func (r *MembershipRepo) Remove(ctx context.Context, ownerID, memberID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, r.table, r.ownerCol, r.memberCol)
	if _, err := r.q.Exec(ctx, query, ownerID, memberID); err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	return nil
}
