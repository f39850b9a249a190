package errs_test

import (
	"errors"
	"testing"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
		msg  string
	}{
		{err: errs.ErrUserNotFound, kind: errs.ErrNotFound, msg: "User not found!"},
		{err: errs.ErrMyBookNotFound, kind: errs.ErrNotFound, msg: "Book not found in your library"},
		{err: errs.ErrUserExists, kind: errs.ErrConflict, msg: "User already exists"},
		{err: errs.ErrBookInLibrary, kind: errs.ErrConflict, msg: "Book already in your library"},
		{err: errs.Validation("title is required"), kind: errs.ErrValidation, msg: "title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)
			require.Equal(t, tt.msg, tt.err.Error())

			wrapped := pkgerrors.Wrap(tt.err, "repo")
			require.ErrorIs(t, wrapped, tt.kind)
			require.ErrorIs(t, wrapped, tt.err)
		})
	}
	require.False(t, errors.Is(errs.ErrUserExists, errs.ErrNotFound))
}

func TestMessage(t *testing.T) {
	require.Equal(t, "Book already in your library", errs.Message(pkgerrors.Wrap(errs.ErrBookInLibrary, "AddMyBook")))
	require.Equal(t, "Invalid credentials", errs.Message(errs.ErrInvalidCredentials))
	require.Equal(t, "", errs.Message(errors.New("connection reset")))
	require.Equal(t, "", errs.Message(errs.ErrUnavailable))
}
