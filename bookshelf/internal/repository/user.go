package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var userColumns = []string{"id::text as id", "email", "password_hash", "created_at"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	q, args, err := qb.Insert(usersTableName).
		Columns("id", "email", "password_hash").
		Values(user.ID, user.Email, user.PasswordHash).
		Suffix("returning " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.User{}, errors.Wrap(err, "CreateUser")
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrUserExists
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return model.User{}, errors.Wrap(err, "CreateUser")
	}
	return created, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *repository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.User{}, errs.ErrUserNotFound
	}
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.User{}, errors.Wrap(err, "getUser")
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "getUser")
	}
	return user, nil
}
