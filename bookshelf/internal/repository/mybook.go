package repository

import (
	"context"
	"fmt"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// myBookSelect reads library entries joined with their catalog book from a
// relation aliased mb.
const myBookSelect = `
select mb.id::text, mb.user_id::text, mb.status, mb.rating, mb.created_at, mb.updated_at,
       b.id, b.title, b.author, b.cover_image, b.availability, b.description, b.genre, b.created_at, b.updated_at
from %s mb
join books b on b.id = mb.book_id`

func scanMyBook(row pgx.CollectableRow) (model.MyBook, error) {
	var mb model.MyBook
	err := row.Scan(
		&mb.ID, &mb.UserID, &mb.Status, &mb.Rating, &mb.CreatedAt, &mb.UpdatedAt,
		&mb.Book.ID, &mb.Book.Title, &mb.Book.Author, &mb.Book.CoverImage, &mb.Book.Availability,
		&mb.Book.Description, &mb.Book.Genre, &mb.Book.CreatedAt, &mb.Book.UpdatedAt,
	)
	return mb, err
}

func collectMyBook(rows pgx.Rows, err error) (model.MyBook, error) {
	if err != nil {
		return model.MyBook{}, err
	}
	mb, err := pgx.CollectOneRow(rows, scanMyBook)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MyBook{}, errs.ErrMyBookNotFound
		}
		return model.MyBook{}, err
	}
	return mb, nil
}

func (r *repository) ListMyBooks(ctx context.Context, userID string, status model.ReadingStatus) ([]model.MyBook, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return []model.MyBook{}, nil
	}
	q := fmt.Sprintf(myBookSelect, myBooksTableName) + `
where mb.user_id = $1 and ($2 = '' or mb.status = $2)
order by mb.created_at, mb.id`

	rows, err := r.db.Query(ctx, q, userID, string(status))
	if err != nil {
		return nil, errors.Wrap(err, "ListMyBooks")
	}
	items, err := pgx.CollectRows(rows, scanMyBook)
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) GetMyBook(ctx context.Context, userID, bookID string) (model.MyBook, error) {
	return getMyBook(ctx, r.db, userID, bookID)
}

func getMyBook(ctx context.Context, db querier, userID, bookID string) (model.MyBook, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return model.MyBook{}, errs.ErrMyBookNotFound
	}
	q := fmt.Sprintf(myBookSelect, myBooksTableName) + `
where mb.user_id = $1 and mb.book_id = $2`
	mb, err := collectMyBook(db.Query(ctx, q, userID, bookID))
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.MyBook{}, errors.Wrap(err, "GetMyBook")
	}
	return mb, err
}

// AddMyBook creates the entry for (userID, bookID). When newBook is set it is
// inserted into the catalog first unless a book with its id already exists.
// A second entry for the same pair fails with errs.ErrBookInLibrary.
func (r *repository) AddMyBook(ctx context.Context, userID, bookID string, newBook *model.Book) (model.MyBook, error) {
	var added model.MyBook
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if newBook != nil {
			if err := insertBooks(ctx, tx, []model.Book{*newBook}, true); err != nil {
				return err
			}
		}
		q, args, err := qb.Insert(myBooksTableName).
			Columns("id", "user_id", "book_id", "status").
			Values(uuid.NewString(), userID, bookID, string(model.StatusWantToRead)).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, q, args...); err != nil {
			switch {
			case isUniqueViolation(err):
				return errs.ErrBookInLibrary
			case isForeignKeyViolation(err):
				return errs.ErrBookNotFound
			}
			r.log.Error("AddMyBook", zap.String("q", q), zap.Error(err))
			return errors.Wrap(err, "insert my_book")
		}
		added, err = getMyBook(ctx, tx, userID, bookID)
		return err
	})
	if err != nil {
		return model.MyBook{}, err
	}
	return added, nil
}

func (r *repository) UpdateMyBookStatus(ctx context.Context, userID, bookID string, status model.ReadingStatus) (model.MyBook, error) {
	return r.updateMyBook(ctx, userID, bookID, "status", string(status))
}

func (r *repository) UpdateMyBookRating(ctx context.Context, userID, bookID string, rating *int) (model.MyBook, error) {
	return r.updateMyBook(ctx, userID, bookID, "rating", rating)
}

func (r *repository) updateMyBook(ctx context.Context, userID, bookID, column string, value any) (model.MyBook, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return model.MyBook{}, errs.ErrMyBookNotFound
	}
	q := fmt.Sprintf(`with updated as (
    update %s set %s = $3, updated_at = now()
    where user_id = $1 and book_id = $2
    returning *
)`, myBooksTableName, column) + fmt.Sprintf(myBookSelect, "updated")

	mb, err := collectMyBook(r.db.Query(ctx, q, userID, bookID, value))
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.MyBook{}, errors.Wrapf(err, "update my_book %s", column)
	}
	return mb, err
}

func (r *repository) DeleteMyBook(ctx context.Context, userID, bookID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return errs.ErrMyBookNotFound
	}
	q, args, err := qb.Delete(myBooksTableName).
		Where("user_id = ? and book_id = ?", userID, bookID).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return errors.Wrap(err, "DeleteMyBook")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrMyBookNotFound
	}
	return nil
}

func (r *repository) MyBookStats(ctx context.Context, userID string) (model.LibraryStats, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return model.LibraryStats{}, nil
	}
	const q = `
	select count(*) as total,
	       count(*) filter (where status = 'Want to Read') as want_to_read,
	       count(*) filter (where status = 'Currently Reading') as currently_reading,
	       count(*) filter (where status = 'Read') as read,
	       avg(rating)::float8 as average_rating
	from my_books
	where user_id = $1
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return model.LibraryStats{}, errors.Wrap(err, "MyBookStats")
	}
	stats, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LibraryStats])
	if err != nil {
		return model.LibraryStats{}, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return stats, nil
}
