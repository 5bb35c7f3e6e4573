package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un fallo para que el llamador decida (reintentar, redirigir, avisar).
type Kind string

const (
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
)

// Errores centinela por tipo; Error.Is los compara por Kind.
var (
	ErrNetwork      = errors.New("backend inalcanzable")
	ErrUnauthorized = errors.New("no autorizado")
	ErrValidation   = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrServer       = errors.New("error del servidor")
)

var sentinels = map[Kind]error{
	KindNetwork:      ErrNetwork,
	KindUnauthorized: ErrUnauthorized,
	KindValidation:   ErrValidation,
	KindNotFound:     ErrNotFound,
	KindServer:       ErrServer,
}

// Error resultado tipado de una operación contra el backend o un servicio externo.
type Error struct {
	Kind    Kind
	Op      string // operación, p.ej. "menu.create_category"
	Status  int    // status HTTP si hubo respuesta
	Message string // mensaje apto para el usuario (puede venir del backend)
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = sentinels[e.Kind].Error()
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrUnauthorized) sobre cualquier *Error del mismo Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// E construye un *Error.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation construye un error de validación con mensaje para el usuario.
func Validation(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// KindOf devuelve el Kind del primer *Error en la cadena; KindServer si no hay ninguno.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindServer
}

// IsKind atajo para KindOf(err) == k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// UserMessage mensaje del backend si lo hubo; vacío en otro caso.
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
