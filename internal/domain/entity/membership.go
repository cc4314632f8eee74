package entity

// Membership par (dueño, miembro) de una tabla de vínculo: abogado↔escritorio
// o usuario↔escritorio. La existencia de la fila es el hecho.
type Membership struct {
	OwnerID  int64
	MemberID int64
}
