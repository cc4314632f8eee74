package entity

// Specialty área del derecho (especialidade).
type Specialty struct {
	ID        int64
	Nome      string
	Descricao string
}

// Snapshot valores actuales tal como se registran en auditoría.
func (s *Specialty) Snapshot() map[string]any {
	return map[string]any{"nome": s.Nome, "descricao": s.Descricao}
}
