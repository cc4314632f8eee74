package entity

// CatalogItem registro de catálogo nombre/descripción (perfiles y permisos).
type CatalogItem struct {
	ID        int64
	Nome      string
	Descricao string
}

// Snapshot valores actuales tal como se registran en auditoría.
func (c *CatalogItem) Snapshot() map[string]any {
	return map[string]any{"nome": c.Nome, "descricao": c.Descricao}
}
