package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas sin hora (data de distribuição).
const DateLayout = "2006-01-02"

// Case representa una causa/proceso. Numero es la clave de negocio única.
type Case struct {
	ID               int64
	Numero           string
	Descricao        string
	Status           string
	ClienteID        *int64
	AdvogadoID       *int64
	EscritorioID     *int64
	EspecialidadeID  *int64
	DataDistribuicao *time.Time
	Valor            *decimal.Decimal // NUMERIC(14,2), nunca negativo
}

// BelongsTo informa si la causa pertenece al escritorio indicado.
func (c *Case) BelongsTo(officeID int64) bool {
	return c.EscritorioID != nil && *c.EscritorioID == officeID
}

// Snapshot valores actuales tal como se registran en auditoría.
func (c *Case) Snapshot() map[string]any {
	return map[string]any{
		"numero":           c.Numero,
		"descricao":        c.Descricao,
		"status":           c.Status,
		"cliente_id":       ptrValue(c.ClienteID),
		"advogado_id":      ptrValue(c.AdvogadoID),
		"escritorio_id":    ptrValue(c.EscritorioID),
		"especialidade_id": ptrValue(c.EspecialidadeID),
		"dataDistribuicao": FormatDate(c.DataDistribuicao),
		"valor":            FormatMoney(c.Valor),
	}
}

// FormatDate devuelve la fecha como "aaaa-mm-dd" o nil.
func FormatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(DateLayout)
}

// FormatMoney devuelve el monto con 2 decimales o nil.
func FormatMoney(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.StringFixed(2)
}
