// Package membership concilia el conjunto deseado de vínculos de un dueño
// (abogado o usuario) con escritorios contra el conjunto actual.
package membership

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/Juridico-api/internal/domain/repository"
)

// Delta vínculos agregados y removidos, ordenados ascendentemente.
type Delta struct {
	Added   []int64
	Removed []int64
}

// Empty indica que no hubo cambios.
func (d Delta) Empty() bool { return len(d.Added) == 0 && len(d.Removed) == 0 }

// Reconcile calcula removed = current − desired y added = desired − current.
func Reconcile(desired, current []int64) Delta {
	want := toSet(desired)
	have := toSet(current)
	var d Delta
	for id := range have {
		if _, ok := want[id]; !ok {
			d.Removed = append(d.Removed, id)
		}
	}
	for id := range want {
		if _, ok := have[id]; !ok {
			d.Added = append(d.Added, id)
		}
	}
	slices.Sort(d.Added)
	slices.Sort(d.Removed)
	return d
}

// Apply concilia los vínculos de ownerID. desired == nil significa "campo
// omitido": no se toca nada. Un slice vacío borra todos los vínculos.
// Los borrados se ejecutan antes que las inserciones.
func Apply(ctx context.Context, links repository.MembershipRepository, ownerID int64, desired *[]int64) (Delta, error) {
	if desired == nil {
		return Delta{}, nil
	}
	current, err := links.MemberIDs(ctx, ownerID)
	if err != nil {
		return Delta{}, fmt.Errorf("membership: listar vínculos de %d: %w", ownerID, err)
	}
	d := Reconcile(*desired, current)
	for _, id := range d.Removed {
		if err := links.Remove(ctx, ownerID, id); err != nil {
			return Delta{}, fmt.Errorf("membership: remover (%d,%d): %w", ownerID, id, err)
		}
	}
	for _, id := range d.Added {
		if err := links.Add(ctx, ownerID, id); err != nil {
			return Delta{}, fmt.Errorf("membership: agregar (%d,%d): %w", ownerID, id, err)
		}
	}
	return d, nil
}

// Unique devuelve los ids sin duplicados, ordenados.
func Unique(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for id := range toSet(ids) {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func toSet(ids []int64) map[int64]struct{} {
	s := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
