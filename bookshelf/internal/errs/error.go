package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnavailable        = errors.New("service unavailable")
	ErrUserNotFound       = newKind("User not found!", ErrNotFound)
	ErrBookNotFound       = newKind("Book not found", ErrNotFound)
	ErrMyBookNotFound     = newKind("Book not found in your library", ErrNotFound)
	ErrUserExists         = newKind("User already exists", ErrConflict)
	ErrBookInLibrary      = newKind("Book already in your library", ErrConflict)
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// kindError carries a client facing message and a category for errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// Validation returns an ErrValidation carrying msg as the client message.
func Validation(msg string) error {
	return newKind(msg, ErrValidation)
}

// Message returns the client facing message carried by err, or "" if err
// has none.
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return ErrInvalidCredentials.Error()
	}
	return ""
}
