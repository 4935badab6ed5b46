package oerror

import "fmt"

// TickError is the error type returned by tickmove packages. It carries a formatted message and, when
// built with Wrap, the error that caused it.
type TickError struct {
	Err   string
	cause error
}

// New returns a TickError with a message formatted from the format and args passed.
func New(format string, args ...any) *TickError {
	return &TickError{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns a TickError that wraps cause, so errors.Is and errors.As see through it.
func Wrap(cause error, format string, args ...any) *TickError {
	return &TickError{Err: fmt.Sprintf(format, args...) + ": " + cause.Error(), cause: cause}
}

func (e *TickError) Error() string {
	return e.Err
}

func (e *TickError) Unwrap() error {
	return e.cause
}
