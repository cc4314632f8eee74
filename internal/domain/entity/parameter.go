package entity

// Parameter par clave/valor de configuración funcional (chave única).
type Parameter struct {
	ID    int64
	Chave string
	Valor string
}

// Snapshot valores actuales tal como se registran en auditoría.
func (p *Parameter) Snapshot() map[string]any {
	return map[string]any{"chave": p.Chave, "valor": p.Valor}
}
