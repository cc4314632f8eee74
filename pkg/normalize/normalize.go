// Package normalize aplica la convención de mayúsculas en la frontera de la API:
// todos los textos en mayúsculas (reglas de pt-BR) salvo los emails, que se
// conservan tal cual.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper recorta espacios y pasa a mayúsculas con reglas de portugués.
// cases.Caser guarda estado, así que se crea uno por llamada.
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// UpperPtr aplica Upper si el puntero no es nil.
func UpperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Upper(*s)
	return &v
}

// Email solo recorta espacios: el local-part es sensible a mayúsculas.
func Email(s string) string {
	return strings.TrimSpace(s)
}

// EmailPtr aplica Email si el puntero no es nil.
func EmailPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Email(*s)
	return &v
}

// Field normaliza un valor según el nombre de campo (emails intactos).
func Field(name, value string) string {
	if strings.EqualFold(name, "email") {
		return Email(value)
	}
	return Upper(value)
}
