package repository

import "context"

// MembershipRepository tabla de vínculo (dueño, miembro) sin atributos propios.
// Se instancia para abogado↔escritorio y usuario↔escritorio.
type MembershipRepository interface {
	MemberIDs(ctx context.Context, ownerID int64) ([]int64, error)
	Exists(ctx context.Context, ownerID, memberID int64) (bool, error)
	Add(ctx context.Context, ownerID, memberID int64) error
	Remove(ctx context.Context, ownerID, memberID int64) error
}
