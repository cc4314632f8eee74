package entity

// Office representa un escritorio (tenant) al que pertenecen causas, usuarios y abogados.
type Office struct {
	ID       int64
	Nome     string
	CNPJ     string
	Email    string
	Telefone string
}

// Snapshot valores actuales tal como se registran en auditoría.
func (o *Office) Snapshot() map[string]any {
	return map[string]any{
		"nome":     o.Nome,
		"cnpj":     o.CNPJ,
		"email":    o.Email,
		"telefone": o.Telefone,
	}
}
