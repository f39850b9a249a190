package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/google/uuid"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx, model.BookFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	if strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.Author) == "" {
		return model.Book{}, errs.Validation("Title and author are required")
	}
	return s.repo.CreateBook(ctx, book)
}

// SeedBooks replaces the whole catalog with the sample set.
func (s *Service) SeedBooks(ctx context.Context) error {
	books := SampleBooks()
	for i := range books {
		books[i].ID = uuid.NewString()
	}
	return s.repo.ReplaceBooks(ctx, books)
}

// SearchBooks queries the external catalog. Results are not stored.
func (s *Service) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation("Search query is required")
	}
	if s.finder == nil {
		return nil, errs.ErrUnavailable
	}
	books, err := s.finder.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func SampleBooks() []model.Book {
	cover := func(path string) string {
		return fmt.Sprintf("https://images.pexels.com/photos/%s?auto=compress&cs=tinysrgb&w=300&h=400&fit=crop", path)
	}
	return []model.Book{
		{
			Title:        "The Pragmatic Programmer",
			Author:       "Andrew Hunt & David Thomas",
			CoverImage:   cover("159711/books-bookstore-book-reading-159711.jpeg"),
			Availability: true,
			Description:  "A practical guide to better programming",
			Genre:        "Technology",
		},
		{
			Title:        "Clean Code",
			Author:       "Robert C. Martin",
			CoverImage:   cover("1560941/pexels-photo-1560941.jpeg"),
			Availability: true,
			Description:  "A handbook of agile software craftsmanship",
			Genre:        "Technology",
		},
		{
			Title:        "The Design of Everyday Things",
			Author:       "Don Norman",
			CoverImage:   cover("1122865/pexels-photo-1122865.jpeg"),
			Availability: true,
			Description:  "Essential reading for anyone interested in design",
			Genre:        "Design",
		},
		{
			Title:        "Atomic Habits",
			Author:       "James Clear",
			CoverImage:   cover("1181675/pexels-photo-1181675.jpeg"),
			Availability: true,
			Description:  "Tiny changes, remarkable results",
			Genre:        "Self-Help",
		},
		{
			Title:        "The Psychology of Money",
			Author:       "Morgan Housel",
			CoverImage:   cover("1181271/pexels-photo-1181271.jpeg"),
			Availability: true,
			Description:  "Timeless lessons on wealth, greed, and happiness",
			Genre:        "Finance",
		},
		{
			Title:        "Sapiens",
			Author:       "Yuval Noah Harari",
			CoverImage:   cover("1181248/pexels-photo-1181248.jpeg"),
			Availability: true,
			Description:  "A brief history of humankind",
			Genre:        "History",
		},
	}
}
