package service

import (
	"context"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) Register(ctx context.Context, email, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}
	return s.repo.CreateUser(ctx, model.User{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login returns errs.ErrUserNotFound for an unknown email and
// errs.ErrInvalidCredentials for a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, errors.Wrap(err, "bcrypt.CompareHashAndPassword")
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
