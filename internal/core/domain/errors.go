package domain

import (
	"errors"
	"fmt"
)

// Error kinds raised by the core services.
// Handlers translate them into transport status codes.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Error is a service failure carrying a caller-facing message.
// It unwraps to one of the kinds above so errors.Is keeps working.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFoundf builds a NotFound error
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidOperationf builds an InvalidOperation error
func InvalidOperationf(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// Unauthorizedf builds an Unauthorized error
func Unauthorizedf(format string, args ...interface{}) error {
	return &Error{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Message returns the caller-facing message of a domain error,
// or fallback when err is not one.
func Message(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return fallback
}
