package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("registro duplicado")
	ErrUnauthorized = errors.New("não autenticado")
	ErrForbidden    = errors.New("acesso negado")
)

// Error agrega un mensaje legible para el usuario a un error centinela.
// errors.Is(err, ErrNotFound) sigue funcionando sobre el resultado.
type Error struct {
	Kind  error
	Msg   string
	Cause error // error original (p. ej. errores de validación por campo)
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Errorf construye un *Error de la clase indicada.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NotFound atajo para "<qué> não encontrado".
func NotFound(what string) error {
	return &Error{Kind: ErrNotFound, Msg: what + " não encontrado"}
}

// Invalid envuelve un error de validación como ErrInvalidInput.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrInvalidInput, Msg: err.Error(), Cause: err}
}
