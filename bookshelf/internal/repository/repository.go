package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	UserRepository
	BookRepository
	MyBookRepository
}

// UserRepository is the credential store. Email uniqueness is enforced by
// the users_email_key constraint.
type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

type BookRepository interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	ReplaceBooks(ctx context.Context, books []model.Book) error
}

// MyBookRepository stores library entries. Every method is scoped by the
// owning user; (user, book) uniqueness is enforced by my_books_user_book_key.
type MyBookRepository interface {
	ListMyBooks(ctx context.Context, userID string, status model.ReadingStatus) ([]model.MyBook, error)
	GetMyBook(ctx context.Context, userID, bookID string) (model.MyBook, error)
	AddMyBook(ctx context.Context, userID, bookID string, newBook *model.Book) (model.MyBook, error)
	UpdateMyBookStatus(ctx context.Context, userID, bookID string, status model.ReadingStatus) (model.MyBook, error)
	UpdateMyBookRating(ctx context.Context, userID, bookID string, rating *int) (model.MyBook, error)
	DeleteMyBook(ctx context.Context, userID, bookID string) error
	MyBookStats(ctx context.Context, userID string) (model.LibraryStats, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName   = `users`
	booksTableName   = `books`
	myBooksTableName = `my_books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.ForeignKeyViolation
}
