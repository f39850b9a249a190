package handler

import (
	"context"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
}

type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	SeedBooks(ctx context.Context) error
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
}

type MyBookService interface {
	ListMyBooks(ctx context.Context, userID string, status model.ReadingStatus) ([]model.MyBook, error)
	AddMyBook(ctx context.Context, userID, bookID string, fields model.BookFields) (model.MyBook, error)
	UpdateStatus(ctx context.Context, userID, bookID string, status model.ReadingStatus) (model.MyBook, error)
	UpdateRating(ctx context.Context, userID, bookID string, rating *int) (model.MyBook, error)
	RemoveMyBook(ctx context.Context, userID, bookID string) error
	LibraryStats(ctx context.Context, userID string) (model.LibraryStats, error)
}

type Service interface {
	AuthService
	BookService
	MyBookService
}

var _ Service = (*service.Service)(nil)
