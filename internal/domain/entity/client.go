package entity

// Client representa un cliente del escritorio (persona física o jurídica).
type Client struct {
	ID       int64
	Nome     string
	CPFCNPJ  string
	Email    string
	Telefone string
}

// Snapshot valores actuales tal como se registran en auditoría.
func (c *Client) Snapshot() map[string]any {
	return map[string]any{
		"nome":     c.Nome,
		"cpf_cnpj": c.CPFCNPJ,
		"email":    c.Email,
		"telefone": c.Telefone,
	}
}
