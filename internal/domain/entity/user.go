package entity

// RoleDev rol del superusuario sintético de desarrollo.
const RoleDev = "DEV"

// RoleAdmin rol del administrador creado por la carga inicial.
const RoleAdmin = "ADMIN"

// User representa una cuenta del sistema.
type User struct {
	ID         int64
	Username   string
	Nome       string
	Email      string
	Role       string
	Senha      string  // valor almacenado: hash bcrypt (o texto plano heredado)
	Permissoes *string // JSON serializado
	AdvogadoID *int64
}

// Snapshot valores actuales tal como se registran en auditoría (sin contraseña).
func (u *User) Snapshot() map[string]any {
	return map[string]any{
		"username":    u.Username,
		"nome":        u.Nome,
		"email":       u.Email,
		"role":        u.Role,
		"permissoes":  ptrValue(u.Permissoes),
		"advogado_id": ptrValue(u.AdvogadoID),
	}
}
