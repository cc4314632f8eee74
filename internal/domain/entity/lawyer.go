package entity

// Lawyer representa un abogado (advogado), opcionalmente vinculado a un usuario del sistema.
type Lawyer struct {
	ID              int64
	Nome            string
	OAB             string // inscripción en la OAB
	Email           string
	Telefone        string
	EspecialidadeID *int64
}

// Snapshot valores actuales tal como se registran en auditoría.
func (l *Lawyer) Snapshot() map[string]any {
	return map[string]any{
		"nome":             l.Nome,
		"oab":              l.OAB,
		"email":            l.Email,
		"telefone":         l.Telefone,
		"especialidade_id": ptrValue(l.EspecialidadeID),
	}
}
