package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// StatusResponse respuesta de operaciones sin cuerpo (delete, health).
type StatusResponse struct {
	Status string `json:"status"`
}

// Deleted respuesta estándar de un borrado.
var Deleted = StatusResponse{Status: "deleted"}

// OfficeRef referencia corta a un escritorio.
type OfficeRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Amount monto recibido como número JSON o como texto ("1.234,50").
type Amount string

// UnmarshalJSON acepta 1234.5, "1234.5" y "1.234,50".
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("valor deve ser numérico: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// Optional campo de una actualización parcial que distingue la clave omitida
// (Set=false) del null explícito (Set=true, Value=nil).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some valor presente.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

// Null null explícito: limpia el campo.
func Null[T any]() Optional[T] { return Optional[T]{Set: true} }

// UnmarshalJSON solo se invoca cuando la clave está en el cuerpo, incluso con null.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Reglas con mensajes en portugués.
var (
	required = validation.Required.Error("é obrigatório")
	notEmpty = validation.NilOrNotEmpty.Error("não pode ser vazio")
)

func maxLen(n int) validation.LengthRule {
	return validation.RuneLength(0, n).Error(fmt.Sprintf("deve ter no máximo %d caracteres", n))
}

// maxPasswordBytes límite de bcrypt, medido en bytes y no en caracteres.
const maxPasswordBytes = 72

var passwordRule = validation.By(func(v any) error {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return nil
		}
		s = *t
	}
	if len(s) > maxPasswordBytes {
		return fmt.Errorf("deve ter no máximo %d bytes", maxPasswordBytes)
	}
	return nil
})

func positiveIDs(ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("id de escritório inválido: %d", id)
		}
	}
	return nil
}

var positiveIDsRule = validation.By(func(v any) error {
	switch ids := v.(type) {
	case []int64:
		return positiveIDs(ids)
	case *[]int64:
		if ids == nil {
			return nil
		}
		return positiveIDs(*ids)
	}
	return nil
})

var jsonTextRule = validation.By(func(v any) error {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return nil
		}
		s = *t
	}
	if s == "" || json.Valid([]byte(s)) {
		return nil
	}
	return fmt.Errorf("deve ser um JSON válido")
})
