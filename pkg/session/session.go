// Package session codifica y decodifica la credencial de sesión (usuario + escritorio).
//
// Dos formatos conviven:
//
//	dev-<usuario>            sesión sin escritorio
//	dev-<usuario>@<escrit.>  sesión en un escritorio
//	dev-token                superusuario sintético de desarrollo
//	<JWT HS256>              claims user_id / office_id firmados
//
// Una credencial mal formada nunca es un error: Decode devuelve ok=false y el
// llamador la trata como "no autenticado".
package session

import (
	"fmt"
	"strconv"
	"strings"

	pkgjwt "github.com/jhoicas/Juridico-api/pkg/jwt"
)

const (
	// DevSentinel resuelve al superusuario de desarrollo, sin restricción de escritorio.
	DevSentinel = "dev-token"
	devPrefix   = "dev-"
)

// Identity resultado de decodificar una credencial.
type Identity struct {
	UserID   int64
	OfficeID int64 // 0 = sin escritorio
	Dev      bool  // superusuario sintético
}

// HasOffice indica si la sesión está acotada a un escritorio.
func (i Identity) HasOffice() bool { return i.OfficeID > 0 }

// Codec emite y decodifica credenciales.
type Codec interface {
	Issue(userID, officeID int64) (string, error)
	Decode(token string) (Identity, bool)
}

// DevCodec credencial en texto plano, sin firma. Solo para desarrollo/demostración.
type DevCodec struct {
	AllowSentinel bool
}

// Issue arma "dev-<usuario>@<escritorio>" (o "dev-<usuario>" sin escritorio).
func (c DevCodec) Issue(userID, officeID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("session: usuario inválido %d", userID)
	}
	if officeID > 0 {
		return fmt.Sprintf("%s%d@%d", devPrefix, userID, officeID), nil
	}
	return fmt.Sprintf("%s%d", devPrefix, userID), nil
}

// Decode interpreta el formato dev. Segmentos no numéricos o no positivos => ok=false.
func (c DevCodec) Decode(token string) (Identity, bool) {
	token = strings.TrimSpace(token)
	if token == DevSentinel {
		return Identity{Dev: true}, c.AllowSentinel
	}
	rest, found := strings.CutPrefix(token, devPrefix)
	if !found {
		return Identity{}, false
	}
	userPart, officePart, hasOffice := strings.Cut(rest, "@")
	userID, ok := parseID(userPart)
	if !ok {
		return Identity{}, false
	}
	id := Identity{UserID: userID}
	if hasOffice {
		officeID, ok := parseID(officePart)
		if !ok {
			return Identity{}, false
		}
		id.OfficeID = officeID
	}
	return id, true
}

// JWTCodec credencial firmada con HS256.
type JWTCodec struct {
	Secret        string
	Issuer        string
	ExpMinutes    int
	AllowSentinel bool
}

// Issue firma un JWT con user_id y office_id.
func (c JWTCodec) Issue(userID, officeID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("session: usuario inválido %d", userID)
	}
	return pkgjwt.Generate(c.Secret, userID, officeID, c.Issuer, c.ExpMinutes)
}

// Decode valida firma y expiración; cualquier fallo => ok=false.
func (c JWTCodec) Decode(token string) (Identity, bool) {
	token = strings.TrimSpace(token)
	if token == DevSentinel {
		return Identity{Dev: true}, c.AllowSentinel
	}
	userID, officeID, err := pkgjwt.Parse(c.Secret, token)
	if err != nil || userID <= 0 || officeID < 0 {
		return Identity{}, false
	}
	return Identity{UserID: userID, OfficeID: officeID}, true
}

// BearerToken extrae el token de un header "Authorization: Bearer <token>".
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
