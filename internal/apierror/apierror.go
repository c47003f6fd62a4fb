// Package apierror defines the error taxonomy shared by all services.
// Every failure a client can see goes through this package so that raw
// driver errors, stack traces and other internals never leak: anything that
// is not an *Error is reported as a generic internal error.
package apierror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInterno covers gateway/connectivity failures and anything
	// unexpected. The client always receives the same generic message.
	KindInterno Kind = iota
	// KindValidacion: a required field is missing/empty or input is malformed.
	KindValidacion
	// KindNoEncontrado: the target id/name does not exist.
	KindNoEncontrado
	// KindIntegridad: a referential check blocked the write (category in use,
	// product pointing at a missing category).
	KindIntegridad
)

const MensajeInterno = "Error interno del servidor"

// Error is a client-facing failure with a classified kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validacion(format string, args ...any) *Error {
	return &Error{Kind: KindValidacion, Message: fmt.Sprintf(format, args...)}
}

func NoEncontrado(format string, args ...any) *Error {
	return &Error{Kind: KindNoEncontrado, Message: fmt.Sprintf(format, args...)}
}

func Integridad(format string, args ...any) *Error {
	return &Error{Kind: KindIntegridad, Message: fmt.Sprintf(format, args...)}
}

func Interno() *Error {
	return &Error{Kind: KindInterno, Message: MensajeInterno}
}

// KindOf classifies any error. Non-taxonomy errors are internal by definition.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInterno
}

// Mensaje returns the client-safe message for err: the taxonomy message when
// classified, the generic internal message otherwise.
func Mensaje(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return MensajeInterno
}
