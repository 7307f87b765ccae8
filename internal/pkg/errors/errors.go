package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalid      = errors.New("invalid")
	ErrConflict     = errors.New("conflict")
	ErrTooMany      = errors.New("too many requests")
	ErrInternal     = errors.New("internal")
)

type invalidError struct {
	msg string
}

func (e *invalidError) Error() string {
	return e.msg
}

func (e *invalidError) Unwrap() error {
	return ErrInvalid
}

// Invalidf builds a validation error whose message names the offending
// field and is safe to return to the caller.
func Invalidf(format string, args ...interface{}) error {
	return &invalidError{msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
