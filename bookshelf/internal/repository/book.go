package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"id", "title", "author", "cover_image", "availability", "description", "genre", "created_at", "updated_at"}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("seq")
	if filter.AvailableOnly {
		q = q.Where(sq.Eq{"availability": true})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	return book, nil
}

// CreateBook inserts a catalog book. A caller supplied id is kept verbatim,
// otherwise one is generated. If a book with that id already exists it is
// left untouched and returned.
func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if err := insertBooks(ctx, r.db, []model.Book{book}, true); err != nil {
		return model.Book{}, err
	}
	return r.GetBook(ctx, book.ID)
}

// ReplaceBooks clears the catalog and inserts books in one transaction.
// Library entries of removed books go with them (on delete cascade).
func (r *repository) ReplaceBooks(ctx context.Context, books []model.Book) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "delete from "+booksTableName); err != nil {
			return errors.Wrap(err, "delete books")
		}
		if len(books) == 0 {
			return nil
		}
		for i := range books {
			if books[i].ID == "" {
				books[i].ID = uuid.NewString()
			}
		}
		return insertBooks(ctx, tx, books, false)
	})
}

func insertBooks(ctx context.Context, db querier, books []model.Book, ignoreExisting bool) error {
	ins := qb.Insert(booksTableName).
		Columns("id", "title", "author", "cover_image", "availability", "description", "genre")
	for _, b := range books {
		ins = ins.Values(b.ID, b.Title, b.Author, b.CoverImage, b.Availability, b.Description, b.Genre)
	}
	if ignoreExisting {
		ins = ins.Suffix("on conflict (id) do nothing")
	}
	q, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, q, args...); err != nil {
		return errors.Wrap(err, "insert books")
	}
	return nil
}
